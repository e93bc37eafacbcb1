package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
)

// UseCase use case для приема бронирования с сайта
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	activity     ActivityRecorder
	metrics      MetricsRecorder
	references   ReferenceGenerator
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс салона, в нем определяется "сегодня"
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	activity ActivityRecorder,
	metrics MetricsRecorder,
	references ReferenceGenerator,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		activity:     activity,
		metrics:      metrics,
		references:   references,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и вставка выполняются в одной сериализуемой транзакции,
// уникальный индекс по активным слотам закрывает оставшуюся гонку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%q, date=%s, time=%s, from=%s", req.Service, req.Date, req.Time, req.SourceAddr)

	// 1. Валидация входных данных
	today := uc.timeProvider.Now().In(uc.location)
	booking, err := validateRequest(req, today)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordAdmission(ResultInvalid)
		return nil, err
	}

	// 2. Сохраняем бронирование, при коллизии номера генерируем новый
	var created *domain.Booking
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		booking.Reference = uc.references.Generate(today)

		created, err = uc.admit(ctx, booking)
		if !errors.Is(err, errDuplicateReference) {
			break
		}
		uc.logger.Warn("CreateBooking: reference %s already used, attempt %d/%d", booking.Reference, attempt, maxReferenceAttempts)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot %s %s already booked", booking.Date.Format(domain.DateFormat), booking.Time)
			uc.metrics.RecordAdmission(ResultConflict)
			return nil, ErrSlotTaken
		case errors.Is(err, errDuplicateReference):
			uc.logger.Error("CreateBooking: no free reference after %d attempts", maxReferenceAttempts)
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		}
		uc.metrics.RecordAdmission(ResultError)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, ref=%s", created.ID, created.Reference)
	uc.metrics.RecordAdmission(ResultAccepted)

	// 3. Журнал и уведомления не зависят от отмены запроса клиентом
	sideCtx := context.WithoutCancel(ctx)

	uc.activity.Record(sideCtx, domain.ActivityEntry{
		Action:     domain.ActionBookingCreated,
		Details:    fmt.Sprintf("Booking created: %s for %s", created.Reference, created.Name),
		SourceAddr: req.SourceAddr,
	})

	uc.notifier.Dispatch(sideCtx, notifications.Notification{
		Template: notifications.TemplateBookingReceived,
		Email:    created.Email,
		Phone:    created.Phone,
		Booking:  created,
	})

	return &Response{
		ID:        created.ID,
		Reference: created.Reference,
		Status:    string(created.Status),
		Date:      created.Date,
		Time:      created.Time,
		CreatedAt: created.CreatedAt,
	}, nil
}

// admit проверяет слот и вставляет бронирование в одной транзакции
func (uc *UseCase) admit(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем слот с блокировкой (FOR UPDATE)
		taken, err := uc.bookingRepo.HasActiveAt(txCtx, booking.Date, booking.Time)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if taken {
			return ErrSlotTaken
		}

		// 2.2. Сохраняем бронирование
		candidate := *booking
		created, err := uc.bookingRepo.Create(txCtx, &candidate)
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			return ErrSlotTaken
		case errors.Is(err, bookingRepo.ErrDuplicateReference):
			return errDuplicateReference
		case err != nil:
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	return result, err
}
