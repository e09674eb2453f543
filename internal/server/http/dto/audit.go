package dto

import (
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// AuditEntryResponse describes a recorded admin mutation.
type AuditEntryResponse struct {
	ID        int64     `json:"id"`
	AdminID   int64     `json:"adminId"`
	Action    string    `json:"action"`
	Targets   []string  `json:"targets"`
	Succeeded bool      `json:"succeeded"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAuditEntries(entries []model.AuditEntry) []AuditEntryResponse {
	result := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		targets := e.Targets
		if targets == nil {
			targets = []string{}
		}
		result = append(result, AuditEntryResponse{
			ID:        e.ID,
			AdminID:   e.AdminID,
			Action:    string(e.Action),
			Targets:   targets,
			Succeeded: e.Succeeded,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return result
}
