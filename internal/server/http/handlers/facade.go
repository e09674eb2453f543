package handlers

import (
	"context"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order fulfilment exposed via HTTP.
type OrderFacade interface {
	OrderBoard(ctx context.Context) (*usecase.OrderBoard, error)
	WatcherStatus() model.WatcherStatus
	CancelOrder(ctx context.Context, adminID int64, id string) error
	MarkDelivered(ctx context.Context, adminID int64, id string) error
	DeliverAllNew(ctx context.Context, adminID int64) (int, error)
	MoveToSales(ctx context.Context, adminID int64, ids []string) (int, error)
	MoveAllCompleted(ctx context.Context, adminID int64) (int, error)
}

// AlertFacade streams new-order alerts.
type AlertFacade interface {
	SubscribeAlerts() (<-chan model.NewOrderAlert, func())
}

// FulfilmentFacade combines order operations with the alert stream.
type FulfilmentFacade interface {
	OrderFacade
	AlertFacade
}

// SalesFacade provides reports, invoices and the dashboard.
type SalesFacade interface {
	SalesReport(ctx context.Context, month string) (*usecase.SalesReport, error)
	WeeklyInvoice(ctx context.Context) (*model.Invoice, error)
	MonthlyInvoice(ctx context.Context) (*model.Invoice, error)
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

// UserFacade manages store customers.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, adminID int64, id string) error
	Engagement(ctx context.Context) (*usecase.Engagement, error)
}

// ProductFacade browses and edits the store catalog.
type ProductFacade interface {
	ProductCatalog(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)
	UpdateProduct(ctx context.Context, adminID int64, id string, update model.ProductUpdate) (*model.Product, error)
}

// AuditFacade serves the admin action log.
type AuditFacade interface {
	AuditLog(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error)
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	OrderFacade
	AlertFacade
	SalesFacade
	UserFacade
	ProductFacade
	AuditFacade
}
