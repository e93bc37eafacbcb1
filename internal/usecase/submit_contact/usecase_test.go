package submit_contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
	"github.com/m04kA/SpaBookingService/internal/validator"
)

type fakeMessageRepo struct {
	created []*domain.ContactMessage
	err     error
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	msg.ID = int64(len(f.created) + 1)
	f.created = append(f.created, msg)
	return msg, nil
}

type fakeNotifier struct {
	sent []notifications.Notification
}

func (f *fakeNotifier) Dispatch(_ context.Context, n notifications.Notification) {
	f.sent = append(f.sent, n)
}

type fakeActivity struct {
	entries []domain.ActivityEntry
}

func (f *fakeActivity) Record(_ context.Context, entry domain.ActivityEntry) {
	f.entries = append(f.entries, entry)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:       "Jane",
		Email:      "jane@example.com",
		Phone:      "+254714109550",
		Subject:    "Bridal makeup",
		Message:    "Do you do trials?",
		SourceAddr: "10.0.0.2",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	activity := &fakeActivity{}
	uc := NewUseCase(repo, notifier, activity, "admin@timosspa.com", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.MessageUnread, repo.created[0].Status)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "New contact message from Jane: Bridal makeup", activity.entries[0].Details)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, notifications.TemplateContactReceived, notifier.sent[0].Template)
	assert.Equal(t, "jane@example.com", notifier.sent[0].Email)
	assert.Equal(t, notifications.TemplateContactAdminAlert, notifier.sent[1].Template)
	assert.Equal(t, "admin@timosspa.com", notifier.sent[1].Email)
}

func TestUseCase_Execute_EmptyMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, notifier, &fakeActivity{}, "admin@timosspa.com", nopLogger{})

	req := validRequest()
	req.Message = "   "
	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
	var verrs validator.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, validator.Errors{validator.MsgMessageRequired}, verrs)
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.sent)
}

func TestUseCase_Execute_WithoutAdminEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(&fakeMessageRepo{}, notifier, &fakeActivity{}, "", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, notifier.sent, 1)
}

func TestUseCase_Execute_PersistenceError(t *testing.T) {
	notifier := &fakeNotifier{}
	activity := &fakeActivity{}
	uc := NewUseCase(&fakeMessageRepo{err: errors.New("db down")}, notifier, activity, "admin@timosspa.com", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.sent)
	assert.Empty(t, activity.entries)
}
