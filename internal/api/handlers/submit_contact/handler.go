package submit_contact

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/validator"
)

const (
	msgInvalidRequestBody = "Invalid request"
	msgDatabaseError      = "Database error occurred. Please try again later."
	msgMessageReceived    = "Thank you for your message! We will get back to you within 24 hours."
)

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeRequest(w, r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.GetClientIP(r.Context())))
	if err != nil {
		var verrs validator.Errors
		if errors.As(err, &verrs) {
			h.logger.Warn("POST /contact - Validation failed: %v", verrs)
			handlers.RespondValidation(w, strings.Join(verrs, ", "), verrs)
			return
		}
		h.logger.Error("POST /contact - Failed to save message: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	h.logger.Info("POST /contact - Message saved: message_id=%d", result.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgMessageReceived)
}
