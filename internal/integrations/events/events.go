package events

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys доменных событий
const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingCancelled = "booking.cancelled"
	ContactReceived  = "contact.received"
)

// Event сообщение, публикуемое в exchange
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	BookingID  int64  `json:"booking_id,omitempty"`
	BookingRef string `json:"booking_ref,omitempty"`
	Status     string `json:"status,omitempty"`
	MessageID  int64  `json:"message_id,omitempty"`
}

// New создает событие с уникальным ID
func New(eventType string, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: occurredAt.UTC(),
	}
}
