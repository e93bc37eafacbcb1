package list_activity

import (
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// ActivityResponse запись журнала в ответе API
type ActivityResponse struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	AdminID    *int64    `json:"admin_id,omitempty"`
	SourceAddr string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityListResponse ответ со списком записей
type ActivityListResponse struct {
	Entries []ActivityResponse `json:"entries"`
}

// FromDomainEntries конвертирует записи журнала в DTO
func FromDomainEntries(entries []*domain.ActivityEntry) *ActivityListResponse {
	resp := &ActivityListResponse{Entries: make([]ActivityResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ActivityResponse{
			ID:         e.ID,
			Action:     e.Action,
			Details:    e.Details,
			AdminID:    e.ActorID,
			SourceAddr: e.SourceAddr,
			CreatedAt:  e.CreatedAt,
		})
	}
	return resp
}
