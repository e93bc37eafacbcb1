package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/integrations/email"
	"github.com/m04kA/SpaBookingService/internal/integrations/events"
)

type fakeEmail struct {
	sent []email.Message
	err  error
}

func (f *fakeEmail) Send(_ context.Context, msg email.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type smsMessage struct {
	phone string
	text  string
}

type fakeSMS struct {
	sent []smsMessage
	err  error
}

func (f *fakeSMS) Send(_ context.Context, phone, text string) error {
	f.sent = append(f.sent, smsMessage{phone: phone, text: text})
	return f.err
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(_ context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

type fakeMetrics struct {
	records []string
}

func (f *fakeMetrics) RecordNotification(template, channel, result string) {
	f.records = append(f.records, template+"/"+channel+"/"+result)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testBusiness = Business{
	Name:      "TIMO'S Makeup & Nails Spa",
	ShortName: "TIMO'S Spa",
	Phone:     "+254 714 109550",
	Address:   "Safaricom House, Eldoret - Basement",
	Social:    "@timos.makeupnails",
}

func testBooking() *domain.Booking {
	notes := "<b>first visit</b>"
	return &domain.Booking{
		ID:        42,
		Reference: "TMS20250601007",
		Name:      "Jane",
		Email:     "jane@example.com",
		Phone:     "+254714109550",
		Service:   "Manicure",
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		Notes:     &notes,
		Status:    domain.StatusPending,
	}
}

func newTestDispatcher(t *testing.T, publisher EventPublisher) (*Dispatcher, *fakeEmail, *fakeSMS, *fakeMetrics) {
	t.Helper()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	emailSender := &fakeEmail{}
	smsSender := &fakeSMS{}
	metrics := &fakeMetrics{}

	return NewDispatcher(renderer, emailSender, smsSender, publisher, metrics, testBusiness, nopLogger{}),
		emailSender, smsSender, metrics
}

func TestRenderer_AllTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	data := TemplateData{
		Business: testBusiness,
		Booking:  NewBookingView(testBooking()),
		Message: NewMessageView(&domain.ContactMessage{
			Name: "Jane", Email: "jane@example.com", Phone: "+254714109550",
			Subject: "Prices", Message: "How much is a pedicure?",
		}),
	}

	for _, name := range Templates {
		t.Run(name, func(t *testing.T) {
			rendered, err := renderer.Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, rendered.Subject)
			assert.Contains(t, rendered.HTML, "Safaricom House")
		})
	}
}

func TestRenderer_BookingReceived(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rendered, err := renderer.Render(TemplateBookingReceived, TemplateData{
		Business: testBusiness,
		Booking:  NewBookingView(testBooking()),
	})
	require.NoError(t, err)

	assert.Equal(t, "Booking Confirmation - TIMO'S Makeup & Nails Spa", rendered.Subject)
	assert.Equal(t,
		"Hi Jane! Your booking at TIMO'S Spa has been received. Ref: TMS20250601007. Date: 2025-06-01 at 10:00. We'll call to confirm. Thanks!",
		rendered.SMS)
	assert.Contains(t, rendered.HTML, "Sunday, June 1, 2025")
	assert.Contains(t, rendered.HTML, "&lt;b&gt;first visit&lt;/b&gt;")
	assert.NotContains(t, rendered.HTML, "<b>first visit</b>")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	_, err = renderer.Render("birthday_promo", TemplateData{})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestDispatcher_Dispatch_EmailAndSMS(t *testing.T) {
	d, emailSender, smsSender, metrics := newTestDispatcher(t, nil)
	booking := testBooking()
	booking.Status = domain.StatusConfirmed

	d.Dispatch(context.Background(), Notification{
		Template:    TemplateBookingConfirmed,
		Email:       booking.Email,
		Phone:       booking.Phone,
		Booking:     booking,
		Attachments: []email.Attachment{{Filename: "slip.pdf", Content: []byte("%PDF")}},
	})

	require.Len(t, emailSender.sent, 1)
	assert.Equal(t, "Booking Confirmed - TIMO'S Spa", emailSender.sent[0].Subject)
	assert.Len(t, emailSender.sent[0].Attachments, 1)

	require.Len(t, smsSender.sent, 1)
	assert.Equal(t, "+254714109550", smsSender.sent[0].phone)
	assert.Equal(t, "Your booking (TMS20250601007) has been confirmed for 2025-06-01 at 10:00.", smsSender.sent[0].text)

	assert.Equal(t, []string{
		"booking_confirmed/email/sent",
		"booking_confirmed/sms/sent",
	}, metrics.records)
}

func TestDispatcher_Dispatch_ChannelsAreIndependent(t *testing.T) {
	d, emailSender, smsSender, metrics := newTestDispatcher(t, nil)
	emailSender.err = errors.New("smtp down")

	d.Dispatch(context.Background(), Notification{
		Template: TemplateBookingCancelled,
		Email:    "jane@example.com",
		Phone:    "+254714109550",
		Booking:  testBooking(),
	})

	assert.Len(t, smsSender.sent, 1)
	assert.Equal(t, []string{
		"booking_cancelled/email/failed",
		"booking_cancelled/sms/sent",
	}, metrics.records)
}

func TestDispatcher_Dispatch_NoSMSVersion(t *testing.T) {
	d, emailSender, smsSender, _ := newTestDispatcher(t, nil)

	d.Dispatch(context.Background(), Notification{
		Template: TemplateContactReceived,
		Email:    "jane@example.com",
		Phone:    "+254714109550",
		Message:  &domain.ContactMessage{ID: 3, Name: "Jane", Subject: "Hi", Message: "Hello"},
	})

	assert.Len(t, emailSender.sent, 1)
	assert.Empty(t, smsSender.sent)
}

func TestDispatcher_Dispatch_RenderFailureIsSwallowed(t *testing.T) {
	d, emailSender, _, metrics := newTestDispatcher(t, nil)

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), Notification{Template: "missing", Email: "jane@example.com"})
	})
	assert.Empty(t, emailSender.sent)
	assert.Equal(t, []string{"missing/email/failed"}, metrics.records)
}

func TestDispatcher_Dispatch_PublishesEvent(t *testing.T) {
	publisher := &fakePublisher{}
	d, _, _, _ := newTestDispatcher(t, publisher)

	d.Dispatch(context.Background(), Notification{
		Template: TemplateBookingReceived,
		Email:    "jane@example.com",
		Booking:  testBooking(),
	})
	d.Dispatch(context.Background(), Notification{
		Template: TemplateContactAdminAlert,
		Email:    "admin@timosspa.com",
		Message:  &domain.ContactMessage{ID: 3},
	})

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.BookingCreated, publisher.published[0].Type)
	assert.Equal(t, "TMS20250601007", publisher.published[0].BookingRef)
	assert.Equal(t, int64(42), publisher.published[0].BookingID)
}
