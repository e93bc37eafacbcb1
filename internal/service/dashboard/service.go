package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// Service сервис статистики админки
type Service struct {
	bookings     BookingCounter
	messages     MessageCounter
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookings BookingCounter,
	messages MessageCounter,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookings:     bookings,
		messages:     messages,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Stats считает бронирования на сегодня, ожидающие подтверждения,
// непрочитанные сообщения и бронирования, созданные в текущем месяце.
// "Сегодня" и границы месяца берутся в часовом поясе салона.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var stats domain.DashboardStats
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if stats.TodayBookings, err = s.bookings.CountByDate(txCtx, today); err != nil {
			return fmt.Errorf("today bookings: %w", err)
		}
		if stats.PendingBookings, err = s.bookings.CountByStatus(txCtx, domain.StatusPending); err != nil {
			return fmt.Errorf("pending bookings: %w", err)
		}
		if stats.UnreadMessages, err = s.messages.CountByStatus(txCtx, domain.MessageUnread); err != nil {
			return fmt.Errorf("unread messages: %w", err)
		}
		if stats.MonthlyBookings, err = s.bookings.CountCreatedBetween(txCtx, monthStart, nextMonth); err != nil {
			return fmt.Errorf("monthly bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Stats: failed to load statistics: %v", err)
		return nil, fmt.Errorf("%w: Stats - %v", ErrInternal, err)
	}

	return &stats, nil
}
