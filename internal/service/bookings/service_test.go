package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SpaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
	"github.com/m04kA/SpaBookingService/pkg/ptr"
)

// fakeBookingRepo повторяет условный UPDATE репозитория
type fakeBookingRepo struct {
	bookings   map[int64]*domain.Booking
	updateErr  error
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return false, nil
	}
	for _, s := range from {
		if b.Status == s {
			b.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

type fakeSlips struct {
	err error
}

func (f fakeSlips) Render(*domain.Booking) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
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

type testEnv struct {
	service  *Service
	repo     *fakeBookingRepo
	notifier *fakeNotifier
	activity *fakeActivity
}

func newTestEnv(status domain.BookingStatus, slips SlipRenderer) *testEnv {
	env := &testEnv{
		repo: &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			7: {
				ID:        7,
				Reference: "TMS20250601007",
				Name:      "Jane",
				Email:     "jane@example.com",
				Phone:     "+254714109550",
				Service:   "Pedicure",
				Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Time:      "10:00",
				Status:    status,
			},
		}},
		notifier: &fakeNotifier{},
		activity: &fakeActivity{},
	}
	if slips == nil {
		slips = fakeSlips{}
	}
	env.service = NewService(env.repo, slips, env.notifier, env.activity, nopLogger{})
	return env
}

func updateRequest(status string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{BookingID: 7, Status: status, AdminID: 1, SourceAddr: "10.0.0.9"}
}

func TestService_UpdateStatus_Confirm(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)

	resp, err := env.service.UpdateStatus(context.Background(), updateRequest("confirmed"))

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	require.Len(t, env.notifier.sent, 1)
	sent := env.notifier.sent[0]
	assert.Equal(t, notifications.TemplateBookingConfirmed, sent.Template)
	assert.Equal(t, "jane@example.com", sent.Email)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "booking-TMS20250601007.pdf", sent.Attachments[0].Filename)

	require.Len(t, env.activity.entries, 1)
	entry := env.activity.entries[0]
	assert.Equal(t, domain.ActionBookingStatusUpdated, entry.Action)
	assert.Equal(t, "Booking TMS20250601007 status changed to confirmed", entry.Details)
	assert.Equal(t, ptr.Ptr(int64(1)), entry.ActorID)
}

func TestService_UpdateStatus_ConfirmWithoutSlip(t *testing.T) {
	env := newTestEnv(domain.StatusPending, fakeSlips{err: errors.New("font missing")})

	_, err := env.service.UpdateStatus(context.Background(), updateRequest("confirmed"))

	require.NoError(t, err)
	require.Len(t, env.notifier.sent, 1)
	assert.Empty(t, env.notifier.sent[0].Attachments)
}

func TestService_UpdateStatus_Cancel(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed, nil)

	_, err := env.service.UpdateStatus(context.Background(), updateRequest("cancelled"))

	require.NoError(t, err)
	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, notifications.TemplateBookingCancelled, env.notifier.sent[0].Template)
	assert.Empty(t, env.notifier.sent[0].Attachments)
}

func TestService_UpdateStatus_CompleteSendsNothing(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed, nil)

	_, err := env.service.UpdateStatus(context.Background(), updateRequest("completed"))

	require.NoError(t, err)
	assert.Empty(t, env.notifier.sent)
	assert.Len(t, env.activity.entries, 1)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	tests := []struct {
		from   domain.BookingStatus
		target string
	}{
		{domain.StatusCancelled, "confirmed"},
		{domain.StatusCompleted, "cancelled"},
		{domain.StatusPending, "completed"},
		{domain.StatusConfirmed, "confirmed"},
		{domain.StatusConfirmed, "pending"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.target, func(t *testing.T) {
			env := newTestEnv(tt.from, nil)

			_, err := env.service.UpdateStatus(context.Background(), updateRequest(tt.target))

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, env.notifier.sent)
			assert.Empty(t, env.activity.entries)
			assert.Equal(t, tt.from, env.repo.bookings[7].Status)
		})
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)
	req := updateRequest("confirmed")
	req.BookingID = 404

	_, err := env.service.UpdateStatus(context.Background(), req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, env.notifier.sent)
	assert.Empty(t, env.activity.entries)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)

	_, err := env.service.UpdateStatus(context.Background(), updateRequest("no_show"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_RepositoryError(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)
	env.repo.updateErr = errors.New("db down")

	_, err := env.service.UpdateStatus(context.Background(), updateRequest("confirmed"))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, env.notifier.sent)
}

func TestService_List(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)

	resp, err := env.service.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("pending"),
		Date:   ptr.Ptr("2025-06-01"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "TMS20250601007", resp.Bookings[0].BookingRef)
	assert.Equal(t, "2025-06-01", resp.Bookings[0].Date)
	assert.Equal(t, domain.DefaultPageLimit, env.repo.lastFilter.Limit)
	require.NotNil(t, env.repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *env.repo.lastFilter.Status)
}

func TestService_List_InvalidFilter(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)

	_, err := env.service.List(context.Background(), &models.ListBookingsRequest{Date: ptr.Ptr("01/06/2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.service.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Slip(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed, nil)

	pdf, name, err := env.service.Slip(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "booking-TMS20250601007.pdf", name)
	assert.NotEmpty(t, pdf)

	_, _, err = env.service.Slip(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID(t *testing.T) {
	env := newTestEnv(domain.StatusPending, nil)

	resp, err := env.service.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "TMS20250601007", resp.BookingRef)
	assert.Equal(t, "pending", resp.Status)

	_, err = env.service.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
