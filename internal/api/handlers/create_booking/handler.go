package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SpaBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SpaBookingService/internal/validator"
)

const (
	msgInvalidRequestBody = "Invalid request"
	msgSlotTaken          = "This time slot is already booked. Please choose another time."
	msgDatabaseError      = "Database error occurred. Please try again later."
	msgBookingCreated     = "Booking submitted successfully! You will receive a confirmation email shortly."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeRequest(w, r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.GetClientIP(r.Context())))
	if err != nil {
		var verrs validator.Errors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /bookings - Validation failed: %v", verrs)
			handlers.RespondValidation(w, strings.Join(verrs, ", "), verrs)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDatabaseError)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, ref=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, handlers.Response{
		Success:    true,
		Message:    msgBookingCreated,
		BookingRef: result.Reference,
	})
}
