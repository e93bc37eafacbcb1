package auth

import (
	"context"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// SessionRepository интерфейс хранилища сессий (ключ - jti токена)
type SessionRepository interface {
	Create(ctx context.Context, session *domain.AdminSession) error
	IsActive(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) (bool, error)
}

// ActivityRecorder интерфейс журнала действий
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
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
