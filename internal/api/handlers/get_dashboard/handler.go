package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to load stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, stats)
}
