package submit_contact

import (
	"fmt"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/validator"
)

func validateRequest(req *Request) (*domain.ContactMessage, error) {
	v := validator.New()

	name := v.Required(req.Name, validator.MsgNameRequired)
	v.MaxLength(name, domain.MaxNameLength, validator.MsgNameTooLong)
	email := v.Email(req.Email)
	phone := v.Phone(req.Phone)
	subject := v.Required(req.Subject, validator.MsgSubjectRequired)
	v.MaxLength(subject, domain.MaxSubjectLength, validator.MsgSubjectTooLong)
	message := v.Required(req.Message, validator.MsgMessageRequired)
	v.MaxLength(message, domain.MaxMessageLength, validator.MsgMessageTooLong)

	if !v.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrValidation, v.Errors())
	}

	return &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
		Status:  domain.MessageUnread,
	}, nil
}
