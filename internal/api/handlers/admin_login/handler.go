package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/service/auth"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "Invalid request"
	msgMissingCredentials = "Please enter both username and password"
	msgInvalidCredentials = "Invalid username or password"
	msgLoginError         = "Login system error. Please try again."
	msgLoggedIn           = "Login successful"
)

type Handler struct {
	service AuthService
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service AuthService, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeRequest(w, r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &models.LoginRequest{
		Username:   req.Username,
		Password:   req.Password,
		SourceAddr: middleware.GetClientIP(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials from %s", middleware.GetClientIP(r.Context()))
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Login failed: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoginError)
		}
		return
	}

	h.cookie.Set(w, result.Token, result.ExpiresAt)

	h.logger.Info("POST /admin/login - Admin logged in: admin_id=%d", result.AdminID)
	handlers.RespondJSON(w, http.StatusOK, handlers.Response{
		Success:  true,
		Message:  msgLoggedIn,
		Username: result.Username,
	})
}
