package admin_action

import (
	"errors"
	"net/http"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/service/bookings"
	bookingModels "github.com/m04kA/SpaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SpaBookingService/internal/service/messages"
	messageModels "github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

const (
	msgInvalidRequestBody = "Invalid request"
	msgMissingSession     = "Please log in to continue"
	msgUnknownAction      = "Unknown action"
	msgInvalidBookingID   = "Invalid booking id"
	msgInvalidMessageID   = "Invalid message id"
	msgInvalidStatus      = "Invalid booking status"
	msgBookingNotFound    = "Booking not found"
	msgMessageNotFound    = "Message not found"
	msgInvalidTransition  = "This status change is not allowed"
	msgBookingUpdateError = "Error updating booking status"
	msgMessageUpdateError = "Error updating message status"
	msgBookingUpdated     = "Booking status updated successfully"
	msgMessageMarkedRead  = "Message marked as read"
	msgMessageAlreadyRead = "Message was already marked as read"
)

type Handler struct {
	bookings BookingService
	messages MessageService
	logger   Logger
}

func NewHandler(bookings BookingService, messages MessageService, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		messages: messages,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req ActionRequest
	if err := handlers.DecodeRequest(w, r, &req); err != nil {
		h.logger.Warn("POST /admin/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Action {
	case ActionUpdateBookingStatus:
		h.updateBookingStatus(w, r, session, &req)
	case ActionMarkMessageRead:
		h.markMessageRead(w, r, session, &req)
	default:
		h.logger.Warn("POST /admin/actions - Unknown action=%q from admin_id=%d", req.Action, session.AdminID)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request, session *middleware.Session, req *ActionRequest) {
	if req.BookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.bookings.UpdateStatus(r.Context(), &bookingModels.UpdateStatusRequest{
		BookingID:  req.BookingID,
		Status:     req.Status,
		AdminID:    session.AdminID,
		SourceAddr: middleware.GetClientIP(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("POST /admin/actions - Transition rejected: booking_id=%d, status=%s", req.BookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /admin/actions - Failed to update booking: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBookingUpdateError)
		}
		return
	}

	h.logger.Info("POST /admin/actions - Booking updated: booking_id=%d, status=%s, admin_id=%d",
		result.ID, result.Status, session.AdminID)
	handlers.RespondJSON(w, http.StatusOK, handlers.Response{
		Success: true,
		Message: msgBookingUpdated,
		Data:    result,
	})
}

func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request, session *middleware.Session, req *ActionRequest) {
	if req.MessageID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	result, err := h.messages.MarkRead(r.Context(), &messageModels.MarkReadRequest{
		MessageID:  req.MessageID,
		AdminID:    session.AdminID,
		SourceAddr: middleware.GetClientIP(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrMessageNotFound):
			handlers.RespondNotFound(w, msgMessageNotFound)

		default:
			h.logger.Error("POST /admin/actions - Failed to mark message: message_id=%d, error=%v", req.MessageID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMessageUpdateError)
		}
		return
	}

	message := msgMessageMarkedRead
	if !result.Changed {
		message = msgMessageAlreadyRead
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.Response{
		Success: true,
		Message: message,
		Data:    result,
	})
}
