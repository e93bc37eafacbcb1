package messages

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter domain.MessagesFilter) ([]*domain.ContactMessage, error)
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
