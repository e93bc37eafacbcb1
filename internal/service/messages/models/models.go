package models

import (
	"errors"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе сообщения
var ErrInvalidStatus = errors.New("invalid message status")

// MarkReadRequest запрос администратора пометить сообщение прочитанным
type MarkReadRequest struct {
	MessageID  int64
	AdminID    int64
	SourceAddr string
}

// ListMessagesRequest запрос на получение сообщений
type ListMessagesRequest struct {
	Status *string
	Limit  int
	Offset int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListMessagesRequest) ToDomainFilter() (domain.MessagesFilter, error) {
	limit, offset := domain.NormalizePage(r.Limit, r.Offset)
	filter := domain.MessagesFilter{Limit: limit, Offset: offset}

	if r.Status != nil {
		status := domain.MessageStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// MarkReadResponse результат пометки
type MarkReadResponse struct {
	ID      int64 `json:"id"`
	Changed bool  `json:"changed"` // false, если сообщение уже было прочитано
}

// MessageResponse сообщение в ответе API
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// FromDomainMessageList конвертирует список domain моделей в DTO
func FromDomainMessageList(messages []*domain.ContactMessage) *MessageListResponse {
	resp := &MessageListResponse{Messages: make([]MessageResponse, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}
	return resp
}
