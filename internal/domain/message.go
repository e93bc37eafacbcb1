package domain

import "time"

// MessageStatus represents the read state of a contact message
type MessageStatus string

const (
	MessageUnread MessageStatus = "unread"
	MessageRead   MessageStatus = "read"
)

// IsValid returns true for a known message status
func (s MessageStatus) IsValid() bool {
	return s == MessageUnread || s == MessageRead
}

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}

// MessagesFilter фильтр для списка сообщений в админке
type MessagesFilter struct {
	Status *MessageStatus
	Limit  int
	Offset int
}
