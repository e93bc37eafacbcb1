package domain

import "time"

// Activity actions
const (
	ActionBookingCreated       = "booking_created"
	ActionContactMessage       = "contact_message"
	ActionBookingStatusUpdated = "booking_status_updated"
	ActionMessageMarkedRead    = "message_marked_read"
	ActionAdminLogin           = "admin_login"
	ActionAdminLoginFailed     = "admin_login_failed"
	ActionAdminLogout          = "admin_logout"
)

// ActivityEntry is an append-only audit record
type ActivityEntry struct {
	ID         int64
	Action     string
	Details    string
	ActorID    *int64 // nil для анонимных действий
	SourceAddr string
	CreatedAt  time.Time
}

// ActivityFilter пагинация журнала действий
type ActivityFilter struct {
	Limit  int
	Offset int
}
