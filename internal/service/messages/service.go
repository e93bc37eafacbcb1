package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SpaBookingService/internal/domain"
	messageRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/message"
	"github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

// Service сервис администрирования сообщений
type Service struct {
	messageRepo MessageRepository
	activity    ActivityRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(messageRepo MessageRepository, activity ActivityRecorder, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		activity:    activity,
		logger:      logger,
	}
}

// MarkRead помечает сообщение прочитанным
// Повторная пометка не ошибка, но и не пишет журнал
func (s *Service) MarkRead(ctx context.Context, req *models.MarkReadRequest) (*models.MarkReadResponse, error) {
	s.logger.Info("MarkRead: message id=%d by admin=%d", req.MessageID, req.AdminID)

	changed, err := s.messageRepo.MarkRead(ctx, req.MessageID)
	if err != nil {
		s.logger.Error("MarkRead: repository error for message id=%d: %v", req.MessageID, err)
		return nil, fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	if !changed {
		// Либо уже прочитано, либо не существует
		if _, err := s.messageRepo.GetByID(ctx, req.MessageID); err != nil {
			if errors.Is(err, messageRepo.ErrMessageNotFound) {
				s.logger.Warn("MarkRead: message id=%d not found", req.MessageID)
				return nil, ErrMessageNotFound
			}
			s.logger.Error("MarkRead: failed to fetch message id=%d: %v", req.MessageID, err)
			return nil, fmt.Errorf("%w: MarkRead - fetch message: %v", ErrInternal, err)
		}
		return &models.MarkReadResponse{ID: req.MessageID, Changed: false}, nil
	}

	s.activity.Record(context.WithoutCancel(ctx), domain.ActivityEntry{
		Action:     domain.ActionMessageMarkedRead,
		Details:    fmt.Sprintf("Message %d marked as read", req.MessageID),
		ActorID:    &req.AdminID,
		SourceAddr: req.SourceAddr,
	})

	return &models.MarkReadResponse{ID: req.MessageID, Changed: true}, nil
}

// List получает сообщения с фильтрацией по статусу
func (s *Service) List(ctx context.Context, req *models.ListMessagesRequest) (*models.MessageListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	messages, err := s.messageRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMessageList(messages), nil
}
