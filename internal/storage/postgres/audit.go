package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type auditRepository struct {
	storage *Storage
}

func (r *auditRepository) Append(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error) {
	const query = `INSERT INTO audit_log (admin_id, action, targets, succeeded, detail)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	if entry.Targets == nil {
		entry.Targets = []string{}
	}
	err := r.storage.pool.QueryRow(ctx, query, entry.AdminID, string(entry.Action), entry.Targets, entry.Succeeded, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *auditRepository) List(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error) {
	query, args, err := auditListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AuditEntry
	for rows.Next() {
		var (
			e      model.AuditEntry
			action string
		)
		if err := rows.Scan(&e.ID, &e.AdminID, &action, &e.Targets, &e.Succeeded, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Action = model.AuditAction(action)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func auditListQuery(filter model.AuditFilter) sq.SelectBuilder {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	qb := psql.
		Select("id", "admin_id", "action", "targets", "succeeded", "detail", "created_at").
		From("audit_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	if filter.Action != "" {
		qb = qb.Where(sq.Eq{"action": string(filter.Action)})
	}
	if filter.AdminID > 0 {
		qb = qb.Where(sq.Eq{"admin_id": filter.AdminID})
	}
	return qb
}
