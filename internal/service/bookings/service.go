package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SpaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SpaBookingService/internal/integrations/email"
	"github.com/m04kA/SpaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
	"github.com/m04kA/SpaBookingService/internal/service/slip"
)

// statusTemplates шаблон уведомления клиента для целевого статуса
// Для completed уведомление не отправляется
var statusTemplates = map[domain.BookingStatus]string{
	domain.StatusConfirmed: notifications.TemplateBookingConfirmed,
	domain.StatusCancelled: notifications.TemplateBookingCancelled,
}

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	slips       SlipRenderer
	notifier    Notifier
	activity    ActivityRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slips SlipRenderer,
	notifier Notifier,
	activity ActivityRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slips:       slips,
		notifier:    notifier,
		activity:    activity,
		logger:      logger,
	}
}

// UpdateStatus переводит бронирование в новый статус
// Обновление условное: строка меняется, только если текущий статус допускает переход.
// Журнал и уведомление пишутся только при фактическом изменении.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s by admin=%d", req.BookingID, req.Status, req.AdminID)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q", req.Status)
		return nil, ErrInvalidStatus
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, domain.TransitionSources(status), status)
	if err != nil {
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to fetch booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - fetch booking: %v", ErrInternal, err)
	}

	if !updated {
		s.logger.Warn("UpdateStatus: booking id=%d cannot move from %s to %s", req.BookingID, booking.Status, status)
		return nil, ErrInvalidTransition
	}

	sideCtx := context.WithoutCancel(ctx)

	s.activity.Record(sideCtx, domain.ActivityEntry{
		Action:     domain.ActionBookingStatusUpdated,
		Details:    fmt.Sprintf("Booking %s status changed to %s", booking.Reference, status),
		ActorID:    &req.AdminID,
		SourceAddr: req.SourceAddr,
	})

	if template, ok := statusTemplates[status]; ok {
		notification := notifications.Notification{
			Template: template,
			Email:    booking.Email,
			Phone:    booking.Phone,
			Booking:  booking,
		}
		if status == domain.StatusConfirmed {
			notification.Attachments = s.slipAttachment(booking)
		}
		s.notifier.Dispatch(sideCtx, notification)
	}

	s.logger.Info("UpdateStatus: booking %s is now %s", booking.Reference, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу и дате
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Slip формирует PDF квитанцию бронирования
// Возвращает содержимое и имя файла
func (s *Service) Slip(ctx context.Context, bookingID int64) ([]byte, string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Slip: booking id=%d not found", bookingID)
			return nil, "", ErrBookingNotFound
		}
		s.logger.Error("Slip: repository error for booking id=%d: %v", bookingID, err)
		return nil, "", fmt.Errorf("%w: Slip - repository error: %v", ErrInternal, err)
	}

	pdf, err := s.slips.Render(booking)
	if err != nil {
		s.logger.Error("Slip: failed to render slip for booking id=%d: %v", bookingID, err)
		return nil, "", fmt.Errorf("%w: Slip - render: %v", ErrInternal, err)
	}

	return pdf, slip.FileName(booking), nil
}

// slipAttachment рендерит квитанцию для письма; при ошибке письмо уходит без вложения
func (s *Service) slipAttachment(booking *domain.Booking) []email.Attachment {
	pdf, err := s.slips.Render(booking)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to render slip for %s: %v", booking.Reference, err)
		return nil
	}
	return []email.Attachment{{Filename: slip.FileName(booking), Content: pdf}}
}
