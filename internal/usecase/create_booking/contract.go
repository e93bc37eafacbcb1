package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasActiveAt(ctx context.Context, date time.Time, bookingTime string) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	Dispatch(ctx context.Context, n notifications.Notification)
}

// ActivityRecorder интерфейс журнала действий
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
}

// MetricsRecorder интерфейс для учета результатов приема бронирований
type MetricsRecorder interface {
	RecordAdmission(result string)
}

// ReferenceGenerator генерирует номер бронирования для дня day
type ReferenceGenerator interface {
	Generate(day time.Time) string
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
