package admin_action

import (
	"net/url"
	"strconv"
)

// Действия админки
const (
	ActionUpdateBookingStatus = "update_booking_status"
	ActionMarkMessageRead     = "mark_message_read"
)

// ActionRequest HTTP request model действия администратора
type ActionRequest struct {
	Action    string `json:"action"`
	BookingID int64  `json:"booking_id,omitempty"`
	Status    string `json:"status,omitempty"`
	MessageID int64  `json:"message_id,omitempty"`
}

// FromForm заполняет модель из полей формы
// Некорректный ID остается нулевым и отклоняется обработчиком
func (r *ActionRequest) FromForm(values url.Values) {
	r.Action = values.Get("action")
	r.Status = values.Get("status")
	r.BookingID, _ = strconv.ParseInt(values.Get("booking_id"), 10, 64)
	r.MessageID, _ = strconv.ParseInt(values.Get("message_id"), 10, 64)
}
