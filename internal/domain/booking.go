package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// bookingTransitions допустимые переходы: целевой статус -> исходные статусы
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed: {StatusPending},
	StatusCancelled: {StatusPending, StatusConfirmed},
	StatusCompleted: {StatusConfirmed},
}

// Booking represents a customer's appointment
type Booking struct {
	ID        int64
	Reference string // TMS + YYYYMMDD + 3 digits
	Name      string
	Email     string
	Phone     string // +254XXXXXXXXX
	Service   string
	Date      time.Time // дата без времени
	Time      string    // HH:MM
	Notes     *string
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid returns true for a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// TransitionSources returns the statuses a booking may move to target from.
// Empty for pending (initial only) and unknown statuses.
func TransitionSources(target BookingStatus) []BookingStatus {
	return bookingTransitions[target]
}

// OccupiesSlot returns true if the booking holds its (date, time) slot
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	Status *BookingStatus
	Date   *time.Time
	Limit  int
	Offset int
}
