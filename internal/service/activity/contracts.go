package activity

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// ActivityRepository интерфейс репозитория журнала действий
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
