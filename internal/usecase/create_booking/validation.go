package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/validator"
)

// validateRequest проверяет форму и собирает бронирование в статусе pending
// today задает текущий день в часовом поясе салона
func validateRequest(req *Request, today time.Time) (*domain.Booking, error) {
	v := validator.New()

	name := v.Required(req.Name, validator.MsgNameRequired)
	v.MaxLength(name, domain.MaxNameLength, validator.MsgNameTooLong)
	email := v.Email(req.Email)
	phone := v.Phone(req.Phone)
	service := v.Required(req.Service, validator.MsgServiceRequired)
	v.MaxLength(service, domain.MaxServiceLength, validator.MsgServiceTooLong)
	date := v.FutureDate(req.Date, today)
	bookingTime := v.Time(req.Time)

	notes := v.Optional(req.Notes)
	v.MaxLength(notes, domain.MaxNotesLength, validator.MsgNotesTooLong)

	if !v.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrValidation, v.Errors())
	}

	booking := &domain.Booking{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Service: service,
		Date:    date,
		Time:    bookingTime,
		Status:  domain.StatusPending,
	}
	if notes != "" {
		booking.Notes = &notes
	}

	return booking, nil
}
