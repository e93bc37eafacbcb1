package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SpaBookingService/internal/domain"
	adminRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/admin"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

// dummyHash сравнивается, когда администратор не найден, чтобы время ответа не выдавало существование логина
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)

// Service сервис входа и выхода администратора
type Service struct {
	adminRepo AdminRepository
	sessions  SessionRepository
	tokens    *TokenManager
	activity  ActivityRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	adminRepo AdminRepository,
	sessions SessionRepository,
	tokens *TokenManager,
	activity ActivityRecorder,
	logger Logger,
) *Service {
	return &Service{
		adminRepo: adminRepo,
		sessions:  sessions,
		tokens:    tokens,
		activity:  activity,
		logger:    logger,
	}
}

// Login проверяет логин и пароль и выпускает токен сессии
// Неудачная попытка пишется в журнал без ID администратора
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	s.logger.Info("Login: attempt for username=%s from %s", username, req.SourceAddr)

	admin, err := s.adminRepo.GetActiveByUsername(ctx, username)
	if err != nil && !errors.Is(err, adminRepo.ErrAdminNotFound) {
		s.logger.Error("Login: repository error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	hash := dummyHash
	if admin != nil {
		hash = []byte(admin.PasswordHash)
	}
	mismatch := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil

	if admin == nil || mismatch {
		s.logger.Warn("Login: failed for username=%s", username)
		s.activity.Record(context.WithoutCancel(ctx), domain.ActivityEntry{
			Action:     domain.ActionAdminLoginFailed,
			Details:    fmt.Sprintf("Failed login attempt: %s", username),
			SourceAddr: req.SourceAddr,
		})
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token for admin=%d: %v", admin.ID, err)
		return nil, err
	}

	err = s.sessions.Create(ctx, &domain.AdminSession{
		ID:         claims.ID,
		AdminID:    admin.ID,
		SourceAddr: req.SourceAddr,
		ExpiresAt:  claims.ExpiresAt.Time,
	})
	if err != nil {
		s.logger.Error("Login: failed to store session for admin=%d: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Login - store session: %v", ErrInternal, err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Error("Login: failed to update last login for admin=%d: %v", admin.ID, err)
	}

	s.activity.Record(context.WithoutCancel(ctx), domain.ActivityEntry{
		Action:     domain.ActionAdminLogin,
		Details:    fmt.Sprintf("Admin login: %s", admin.Username),
		ActorID:    &admin.ID,
		SourceAddr: req.SourceAddr,
	})

	s.logger.Info("Login: admin=%d logged in, session=%s", admin.ID, claims.ID)
	return &models.LoginResponse{
		Token:     token,
		SessionID: claims.ID,
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout отзывает сессию и пишет выход в журнал; cookie сессии удаляет обработчик
// После отзыва тот же токен больше не проходит Authenticate
func (s *Service) Logout(ctx context.Context, req *models.LogoutRequest) error {
	s.logger.Info("Logout: admin=%d, session=%s", req.AdminID, req.SessionID)

	revoked, err := s.sessions.Revoke(ctx, req.SessionID)
	if err != nil {
		s.logger.Error("Logout: failed to revoke session=%s: %v", req.SessionID, err)
		return fmt.Errorf("%w: Logout - revoke session: %v", ErrInternal, err)
	}
	if !revoked {
		s.logger.Warn("Logout: session=%s was already ended", req.SessionID)
	}

	s.activity.Record(context.WithoutCancel(ctx), domain.ActivityEntry{
		Action:     domain.ActionAdminLogout,
		Details:    "Admin logout",
		ActorID:    &req.AdminID,
		SourceAddr: req.SourceAddr,
	})
	return nil
}

// Authenticate проверяет подпись токена и то, что его сессия не завершена
func (s *Service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	active, err := s.sessions.IsActive(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Authenticate: failed to check session=%s: %v", claims.ID, err)
		return nil, fmt.Errorf("%w: Authenticate - check session: %v", ErrInternal, err)
	}
	if !active {
		return nil, ErrSessionEnded
	}

	return claims, nil
}
