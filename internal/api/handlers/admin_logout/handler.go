package admin_logout

import (
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

const (
	msgMissingSession = "Please log in to continue"
	msgLoggedOut      = "Logged out"
	msgLogoutFailed   = "Logout failed. Please try again."
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

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/logout - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	err := h.service.Logout(r.Context(), &models.LogoutRequest{
		AdminID:    session.AdminID,
		Username:   session.Username,
		SessionID:  session.SessionID,
		SourceAddr: middleware.GetClientIP(r.Context()),
	})
	h.cookie.Clear(w)
	if err != nil {
		h.logger.Error("POST /admin/logout - Failed to end session: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLogoutFailed)
		return
	}

	h.logger.Info("POST /admin/logout - Admin logged out: admin_id=%d", session.AdminID)
	handlers.RespondSuccess(w, http.StatusOK, msgLoggedOut)
}
