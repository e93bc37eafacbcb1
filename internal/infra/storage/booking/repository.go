package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SpaBookingService/pkg/pgerr"
	"github.com/m04kA/SpaBookingService/pkg/psqlbuilder"
)

const (
	tableName = "bookings"

	// Имена ограничений из migrations/001_init.sql
	constraintActiveSlot = "bookings_active_slot_uniq"
	constraintReference  = "bookings_booking_ref_key"
)

var bookingColumns = []string{
	"id",
	"booking_ref",
	"name",
	"email",
	"phone",
	"service",
	"booking_date",
	"to_char(booking_time, 'HH24:MI')",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности слота возвращается как ErrSlotTaken,
// коллизия номера бронирования - как ErrDuplicateReference.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"booking_ref",
			"name",
			"email",
			"phone",
			"service",
			"booking_date",
			"booking_time",
			"notes",
			"status",
		).
		Values(
			booking.Reference,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Service,
			booking.Date.Format(domain.DateFormat),
			booking.Time,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	switch {
	case pgerr.IsUniqueViolation(err, constraintActiveSlot):
		return nil, ErrSlotTaken
	case pgerr.IsUniqueViolation(err, constraintReference):
		return nil, ErrDuplicateReference
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// HasActiveAt проверяет, есть ли неотмененное бронирование на слот (date, time)
// Внутри транзакции блокирует найденную строку (FOR UPDATE)
func (r *Repository) HasActiveAt(ctx context.Context, date time.Time, bookingTime string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(tableName).
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"booking_time": bookingTime,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus переводит бронирование в статус to, если текущий статус входит в from
// Возвращает false, если ни одна строка не изменилась (нет такого ID или переход недопустим)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// List получает бронирования для админки
// Сортировка: сначала ближайшие по дате и времени визита, затем по ID
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		OrderBy("booking_date DESC", "booking_time DESC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// CountByDate считает бронирования на дату визита
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, "CountByDate", squirrel.Eq{"booking_date": date.Format(domain.DateFormat)})
}

// CountByStatus считает бронирования в статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error) {
	return r.count(ctx, "CountByStatus", squirrel.Eq{"status": status})
}

// CountCreatedBetween считает бронирования, созданные в интервале [from, to)
func (r *Repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, "CountCreatedBetween", squirrel.And{
		squirrel.GtOrEq{"created_at": from},
		squirrel.Lt{"created_at": to},
	})
}

func (r *Repository) count(ctx context.Context, op string, where squirrel.Sqlizer) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - execute count: %w", ErrExecQuery, op, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в бронирование (порядок колонок - bookingColumns)
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Service,
		&booking.Date,
		&booking.Time,
		&booking.Notes,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
