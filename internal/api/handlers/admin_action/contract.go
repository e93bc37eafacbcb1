package admin_action

import (
	"context"

	bookingModels "github.com/m04kA/SpaBookingService/internal/service/bookings/models"
	messageModels "github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, req *bookingModels.UpdateStatusRequest) (*bookingModels.BookingResponse, error)
}

type MessageService interface {
	MarkRead(ctx context.Context, req *messageModels.MarkReadRequest) (*messageModels.MarkReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
