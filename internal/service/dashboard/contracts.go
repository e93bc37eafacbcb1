package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// BookingCounter интерфейс счетчиков бронирований
type BookingCounter interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

// MessageCounter интерфейс счетчиков сообщений
type MessageCounter interface {
	CountByStatus(ctx context.Context, status domain.MessageStatus) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
