package list_messages

import (
	"context"

	"github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

type MessageService interface {
	List(ctx context.Context, req *models.ListMessagesRequest) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
