package list_activity

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

type ActivityService interface {
	List(ctx context.Context, limit, offset int) ([]*domain.ActivityEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
