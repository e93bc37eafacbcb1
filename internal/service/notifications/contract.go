package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SpaBookingService/internal/integrations/email"
	"github.com/m04kA/SpaBookingService/internal/integrations/events"
)

// EmailSender интерфейс канала email
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

// SMSSender интерфейс канала SMS
type SMSSender interface {
	Send(ctx context.Context, phone, text string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// MetricsRecorder интерфейс для учета отправленных уведомлений
type MetricsRecorder interface {
	RecordNotification(template, channel, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
