package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/service/auth"
)

const msgUnauthorized = "Please log in to continue"

// TokenAuthenticator проверяет токен сессии
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует валидную сессию администратора
// Токен берется из cookie сессии, затем из заголовка Authorization: Bearer
func Auth(authenticator TokenAuthenticator, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := authenticator.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrInternal) {
				logger.Error("Auth: session check failed, request_id=%s: %v", GetRequestID(r.Context()), err)
				handlers.RespondInternalError(w)
				return
			}
			if err != nil {
				logger.Warn("Auth: rejected session token from %s, request_id=%s: %v",
					GetClientIP(r.Context()), GetRequestID(r.Context()), err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			adminID, err := claims.AdminID()
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := WithSession(r.Context(), &Session{
				AdminID:   adminID,
				Username:  claims.Username,
				SessionID: claims.ID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
