package activity

import (
	"context"
	"fmt"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// UnknownSource адрес источника, когда он не определен
const UnknownSource = "unknown"

// Service журнал действий
type Service struct {
	repo   ActivityRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(repo ActivityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record добавляет запись в журнал
// Ошибка записи только логируется: журнал не должен ломать основную операцию
func (s *Service) Record(ctx context.Context, entry domain.ActivityEntry) {
	if entry.SourceAddr == "" {
		entry.SourceAddr = UnknownSource
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error("Record: failed to log activity action=%s, details=%q: %v", entry.Action, entry.Details, err)
	}
}

// List возвращает последние записи журнала
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.ActivityEntry, error) {
	limit, offset = domain.NormalizePage(limit, offset)

	entries, err := s.repo.List(ctx, domain.ActivityFilter{Limit: limit, Offset: offset})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return entries, nil
}
