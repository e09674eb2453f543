package repository

import (
	"context"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// AuditRepository stores the trail of admin mutations.
type AuditRepository interface {
	Append(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error)
	List(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error)
}
