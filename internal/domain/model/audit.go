package model

import "time"

// AuditAction names a mutation forwarded to the store API.
type AuditAction string

const (
	AuditActionCancelOrder   AuditAction = "cancel_order"
	AuditActionMarkDelivered AuditAction = "mark_delivered"
	AuditActionDeliverAll    AuditAction = "deliver_all"
	AuditActionMoveToSales   AuditAction = "move_to_sales"
	AuditActionDeleteUser    AuditAction = "delete_user"
	AuditActionUpdateProduct AuditAction = "update_product"
)

// AuditEntry records a single admin mutation and its outcome.
type AuditEntry struct {
	ID        int64
	AdminID   int64
	Action    AuditAction
	Targets   []string
	Succeeded bool
	Detail    string
	CreatedAt time.Time
}

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	Action  AuditAction
	AdminID int64
	Limit   int
}
