package create_booking

import (
	"net/url"

	createBooking "github.com/m04kA/SpaBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (JSON или форма сайта)
type CreateBookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // "2025-06-01"
	Time    string `json:"time"` // "10:00"
	Notes   string `json:"notes,omitempty"`
}

// FromForm заполняет модель из полей формы
func (r *CreateBookingRequest) FromForm(values url.Values) {
	r.Name = values.Get("name")
	r.Email = values.Get("email")
	r.Phone = values.Get("phone")
	r.Service = values.Get("service")
	r.Date = values.Get("date")
	r.Time = values.Get("time")
	r.Notes = values.Get("notes")
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sourceAddr string) *createBooking.Request {
	return &createBooking.Request{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Service:    r.Service,
		Date:       r.Date,
		Time:       r.Time,
		Notes:      r.Notes,
		SourceAddr: sourceAddr,
	}
}
