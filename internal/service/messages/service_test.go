package messages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/domain"
	messageRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/message"
	"github.com/m04kA/SpaBookingService/internal/service/messages/models"
	"github.com/m04kA/SpaBookingService/pkg/ptr"
)

type fakeMessageRepo struct {
	messages   map[int64]*domain.ContactMessage
	err        error
	lastFilter domain.MessagesFilter
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id int64) (*domain.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, messageRepo.ErrMessageNotFound
	}
	return m, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.messages[id]
	if !ok || m.Status == domain.MessageRead {
		return false, nil
	}
	m.Status = domain.MessageRead
	return true, nil
}

func (f *fakeMessageRepo) List(_ context.Context, filter domain.MessagesFilter) ([]*domain.ContactMessage, error) {
	f.lastFilter = filter
	return []*domain.ContactMessage{f.messages[1]}, nil
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

func newTestService() (*Service, *fakeMessageRepo, *fakeActivity) {
	repo := &fakeMessageRepo{messages: map[int64]*domain.ContactMessage{
		1: {ID: 1, Name: "Jane", Subject: "Hi", Status: domain.MessageUnread},
	}}
	activity := &fakeActivity{}
	return NewService(repo, activity, nopLogger{}), repo, activity
}

func TestService_MarkRead_Twice(t *testing.T) {
	s, repo, activity := newTestService()
	req := &models.MarkReadRequest{MessageID: 1, AdminID: 2, SourceAddr: "10.0.0.9"}

	first, err := s.MarkRead(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := s.MarkRead(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Changed)

	assert.Equal(t, domain.MessageRead, repo.messages[1].Status)
	require.Len(t, activity.entries, 1)
	assert.Equal(t, domain.ActionMessageMarkedRead, activity.entries[0].Action)
	assert.Equal(t, "Message 1 marked as read", activity.entries[0].Details)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	s, _, activity := newTestService()

	_, err := s.MarkRead(context.Background(), &models.MarkReadRequest{MessageID: 99})

	assert.ErrorIs(t, err, ErrMessageNotFound)
	assert.Empty(t, activity.entries)
}

func TestService_MarkRead_RepositoryError(t *testing.T) {
	s, repo, _ := newTestService()
	repo.err = errors.New("db down")

	_, err := s.MarkRead(context.Background(), &models.MarkReadRequest{MessageID: 1})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List(t *testing.T) {
	s, repo, _ := newTestService()

	resp, err := s.List(context.Background(), &models.ListMessagesRequest{Status: ptr.Ptr("unread"), Limit: 5})

	require.NoError(t, err)
	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, 5, repo.lastFilter.Limit)

	_, err = s.List(context.Background(), &models.ListMessagesRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
