package models

import (
	"errors"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// UpdateStatusRequest запрос администратора на смену статуса бронирования
type UpdateStatusRequest struct {
	BookingID  int64
	Status     string
	AdminID    int64
	SourceAddr string
}

// ListBookingsRequest запрос на получение бронирований в админке
type ListBookingsRequest struct {
	Status *string // Фильтр по статусу (опционально)
	Date   *string // Фильтр по дате визита YYYY-MM-DD (опционально)
	Limit  int
	Offset int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	limit, offset := domain.NormalizePage(r.Limit, r.Offset)
	filter := domain.BookingsFilter{
		Limit:  limit,
		Offset: offset,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	BookingRef string  `json:"booking_ref"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Service    string  `json:"service"`
	Date       string  `json:"date"` // "2025-10-15"
	Time       string  `json:"time"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
	Status     string  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		BookingRef: b.Reference,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Service:    b.Service,
		Date:       b.Date.Format(domain.DateFormat),
		Time:       b.Time,
		Notes:      b.Notes,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
