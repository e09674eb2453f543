package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/domain/repository"
	"github.com/polkiloo/salesdesk/internal/metrics"
)

// AuditUseCase records admin mutations and serves the audit trail.
type AuditUseCase struct {
	entries repository.AuditRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuditUseCase constructs AuditUseCase.
func NewAuditUseCase(entries repository.AuditRepository, m *metrics.Metrics, logger *slog.Logger) *AuditUseCase {
	return &AuditUseCase{entries: entries, metrics: m, logger: logger}
}

// Record stores the outcome of a mutation. Storage failures are logged and
// never reported to the caller.
func (u *AuditUseCase) Record(ctx context.Context, adminID int64, action model.AuditAction, targets []string, detail string, opErr error) {
	u.metrics.ObserveMutation(string(action), opErr)

	entry := model.AuditEntry{
		AdminID:   adminID,
		Action:    action,
		Targets:   targets,
		Succeeded: opErr == nil,
		Detail:    detail,
	}
	if opErr != nil {
		entry.Detail = opErr.Error()
	}

	if _, err := u.entries.Append(ctx, entry); err != nil {
		u.logger.WarnContext(ctx, "audit write failed",
			slog.String("action", string(action)),
			slog.Int64("admin_id", adminID),
			slog.String("error", err.Error()),
		)
	}
}

// List returns recorded mutations, newest first.
func (u *AuditUseCase) List(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error) {
	return u.entries.List(ctx, filter)
}
