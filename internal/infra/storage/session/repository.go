package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SpaBookingService/pkg/psqlbuilder"
)

const tableName = "admin_sessions"

// Repository репозиторий сессий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сессию, выпущенную при входе
func (r *Repository) Create(ctx context.Context, s *domain.AdminSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "admin_id", "ip_address", "expires_at").
		Values(s.ID, s.AdminID, s.SourceAddr, s.ExpiresAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// IsActive проверяет, что сессия существует, не отозвана и не истекла
func (r *Repository) IsActive(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		Where(squirrel.Expr("expires_at > NOW()")).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsActive - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsActive - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// Revoke отзывает сессию
// Возвращает false, если сессия не найдена или уже отозвана
func (r *Repository) Revoke(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("revoked_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Revoke - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Revoke - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Revoke - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
