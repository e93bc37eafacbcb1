package submit_contact

import (
	"context"
	"fmt"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
)

// UseCase use case для приема сообщения с формы обратной связи
type UseCase struct {
	messageRepo MessageRepository
	notifier    Notifier
	activity    ActivityRecorder
	adminEmail  string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// adminEmail - адрес, на который уходит оповещение о новом сообщении (пустой отключает оповещение)
func NewUseCase(
	messageRepo MessageRepository,
	notifier Notifier,
	activity ActivityRecorder,
	adminEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		messageRepo: messageRepo,
		notifier:    notifier,
		activity:    activity,
		adminEmail:  adminEmail,
		logger:      logger,
	}
}

// Execute валидирует и сохраняет сообщение, затем уведомляет отправителя и администратора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitContact: subject=%q, from=%s", req.Subject, req.SourceAddr)

	// 1. Валидация входных данных
	msg, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем сообщение
	created, err := uc.messageRepo.Create(ctx, msg)
	if err != nil {
		uc.logger.Error("SubmitContact: failed to save message: %v", err)
		return nil, fmt.Errorf("%w: failed to save message: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitContact: successfully saved message id=%d", created.ID)

	// 3. Журнал и уведомления
	sideCtx := context.WithoutCancel(ctx)

	uc.activity.Record(sideCtx, domain.ActivityEntry{
		Action:     domain.ActionContactMessage,
		Details:    fmt.Sprintf("New contact message from %s: %s", created.Name, created.Subject),
		SourceAddr: req.SourceAddr,
	})

	uc.notifier.Dispatch(sideCtx, notifications.Notification{
		Template: notifications.TemplateContactReceived,
		Email:    created.Email,
		Message:  created,
	})

	if uc.adminEmail != "" {
		uc.notifier.Dispatch(sideCtx, notifications.Notification{
			Template: notifications.TemplateContactAdminAlert,
			Email:    uc.adminEmail,
			Message:  created,
		})
	}

	return &Response{ID: created.ID}, nil
}
