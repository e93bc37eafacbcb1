package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SpaBookingService/pkg/pgerr"
	"github.com/m04kA/SpaBookingService/pkg/psqlbuilder"
)

const (
	tableName = "admin_users"

	constraintUsername = "admin_users_username_key"
)

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByUsername находит активного администратора по логину
// Отключенные администраторы не отличаются от несуществующих
func (r *Repository) GetActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password", "status", "last_login", "created_at").
		From(tableName).
		Where(squirrel.Eq{"username": username, "status": domain.AdminActive}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var admin domain.AdminUser
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Status,
		&admin.LastLogin,
		&admin.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUsername - scan admin: %w", ErrScanRow, err)
	}

	return &admin, nil
}

// UpdateLastLogin проставляет время последнего входа
func (r *Repository) UpdateLastLogin(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("last_login", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}

// Create создает администратора с уже захешированным паролем
func (r *Repository) Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	status := admin.Status
	if status == "" {
		status = domain.AdminActive
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("username", "password", "status").
		Values(admin.Username, admin.PasswordHash, status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &admin.CreatedAt)
	if pgerr.IsUniqueViolation(err, constraintUsername) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	admin.Status = status
	return admin, nil
}
