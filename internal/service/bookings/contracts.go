package bookings

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SlipRenderer интерфейс генератора PDF квитанций
type SlipRenderer interface {
	Render(b *domain.Booking) ([]byte, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	Dispatch(ctx context.Context, n notifications.Notification)
}

// ActivityRecorder интерфейс журнала действий
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
