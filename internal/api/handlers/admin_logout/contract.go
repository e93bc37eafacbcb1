package admin_logout

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

type AuthService interface {
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
