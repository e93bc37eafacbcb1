package submit_contact

import (
	"net/url"

	submitContact "github.com/m04kA/SpaBookingService/internal/usecase/submit_contact"
)

// ContactRequest HTTP request model формы обратной связи
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FromForm заполняет модель из полей формы
func (r *ContactRequest) FromForm(values url.Values) {
	r.Name = values.Get("name")
	r.Email = values.Get("email")
	r.Phone = values.Get("phone")
	r.Subject = values.Get("subject")
	r.Message = values.Get("message")
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactRequest) ToUseCaseRequest(sourceAddr string) *submitContact.Request {
	return &submitContact.Request{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Subject:    r.Subject,
		Message:    r.Message,
		SourceAddr: sourceAddr,
	}
}
