package list_messages

import (
	"errors"
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/service/messages"
	"github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

const msgInvalidParams = "Invalid query parameters"

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/messages
// Query params: status, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, err := handlers.QueryInt(query, "limit")
	if err != nil {
		h.logger.Warn("GET /admin/messages - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	offset, err := handlers.QueryInt(query, "offset")
	if err != nil {
		h.logger.Warn("GET /admin/messages - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListMessagesRequest{
		Status: handlers.QueryString(query, "status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if errors.Is(err, messages.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/messages - Failed to list messages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, result)
}
