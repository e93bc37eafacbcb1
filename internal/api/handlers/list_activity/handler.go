package list_activity

import (
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
)

const msgInvalidParams = "Invalid query parameters"

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/activity
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, err := handlers.QueryInt(query, "limit")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	offset, err := handlers.QueryInt(query, "offset")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	entries, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("GET /admin/activity - Failed to list activity: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, FromDomainEntries(entries))
}
