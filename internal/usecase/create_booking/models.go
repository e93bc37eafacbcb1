package create_booking

import "time"

// Request модель запроса на создание бронирования (сырые поля формы)
type Request struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Notes   string

	SourceAddr string // IP клиента для журнала
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Reference string
	Status    string
	Date      time.Time
	Time      string
	CreatedAt time.Time
}

// Результаты приема бронирования (значение метки result)
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultError    = "error"
)
