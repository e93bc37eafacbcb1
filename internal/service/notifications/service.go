package notifications

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/integrations/email"
	"github.com/m04kA/SpaBookingService/internal/integrations/events"
)

// eventTypes шаблон -> routing key доменного события
var eventTypes = map[string]string{
	TemplateBookingReceived:  events.BookingCreated,
	TemplateBookingConfirmed: events.BookingConfirmed,
	TemplateBookingCancelled: events.BookingCancelled,
	TemplateContactReceived:  events.ContactReceived,
}

// Dispatcher рендерит уведомления и отправляет их по всем настроенным каналам
// Ошибки рендеринга и доставки логируются и учитываются в метриках, но не возвращаются:
// уведомление никогда не отменяет уже сохраненную операцию
type Dispatcher struct {
	renderer     *Renderer
	email        EmailSender
	sms          SMSSender
	publisher    EventPublisher
	metrics      MetricsRecorder
	business     Business
	timeProvider TimeProvider
	logger       Logger
}

// NewDispatcher создает диспетчер уведомлений
// publisher может быть nil, тогда события не публикуются
func NewDispatcher(
	renderer *Renderer,
	emailSender EmailSender,
	smsSender SMSSender,
	publisher EventPublisher,
	metrics MetricsRecorder,
	business Business,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		renderer:     renderer,
		email:        emailSender,
		sms:          smsSender,
		publisher:    publisher,
		metrics:      metrics,
		business:     business,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Dispatch отправляет уведомление по email и SMS независимо друг от друга
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) {
	d.publish(ctx, n)

	if n.Email == "" && n.Phone == "" {
		return
	}

	rendered, err := d.renderer.Render(n.Template, TemplateData{
		Business: d.business,
		Booking:  NewBookingView(n.Booking),
		Message:  NewMessageView(n.Message),
	})
	if err != nil {
		d.logger.Error("Dispatch: failed to render template=%s: %v", n.Template, err)
		if n.Email != "" {
			d.metrics.RecordNotification(n.Template, ChannelEmail, ResultFailed)
		}
		if n.Phone != "" {
			d.metrics.RecordNotification(n.Template, ChannelSMS, ResultFailed)
		}
		return
	}

	if n.Email != "" {
		err := d.email.Send(ctx, email.Message{
			To:          n.Email,
			Subject:     rendered.Subject,
			HTML:        rendered.HTML,
			Text:        rendered.SMS,
			Attachments: n.Attachments,
		})
		d.record(n.Template, ChannelEmail, n.Email, err)
	}

	if n.Phone != "" && rendered.SMS != "" {
		err := d.sms.Send(ctx, n.Phone, rendered.SMS)
		d.record(n.Template, ChannelSMS, n.Phone, err)
	}
}

func (d *Dispatcher) publish(ctx context.Context, n Notification) {
	if d.publisher == nil {
		return
	}
	eventType, ok := eventTypes[n.Template]
	if !ok {
		return
	}

	event := events.New(eventType, d.timeProvider.Now())
	if n.Booking != nil {
		event.BookingID = n.Booking.ID
		event.BookingRef = n.Booking.Reference
		event.Status = string(n.Booking.Status)
	}
	if n.Message != nil {
		event.MessageID = n.Message.ID
	}

	err := d.publisher.Publish(ctx, event)
	d.record(n.Template, ChannelEvent, eventType, err)
}

func (d *Dispatcher) record(template, channel, recipient string, err error) {
	if err != nil {
		d.logger.Error("Dispatch: %s delivery failed, template=%s, to=%s: %v", channel, template, recipient, err)
		d.metrics.RecordNotification(template, channel, ResultFailed)
		return
	}
	d.logger.Info("Dispatch: %s delivered, template=%s, to=%s", channel, template, recipient)
	d.metrics.RecordNotification(template, channel, ResultSent)
}
