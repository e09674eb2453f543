// Package facadetest holds HTTP facade stubs shared by handler and router tests.
package facadetest

import (
	"context"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	BoardFn            func(context.Context) (*usecase.OrderBoard, error)
	Status             model.WatcherStatus
	CancelFn           func(context.Context, int64, string) error
	DeliveredFn        func(context.Context, int64, string) error
	DeliverAllFn       func(context.Context, int64) (int, error)
	MoveToSalesFn      func(context.Context, int64, []string) (int, error)
	MoveAllCompletedFn func(context.Context, int64) (int, error)
}

func (s OrderFacadeStub) OrderBoard(ctx context.Context) (*usecase.OrderBoard, error) {
	if s.BoardFn != nil {
		return s.BoardFn(ctx)
	}
	return &usecase.OrderBoard{}, nil
}

func (s OrderFacadeStub) WatcherStatus() model.WatcherStatus {
	return s.Status
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, adminID int64, id string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, adminID, id)
	}
	return nil
}

func (s OrderFacadeStub) MarkDelivered(ctx context.Context, adminID int64, id string) error {
	if s.DeliveredFn != nil {
		return s.DeliveredFn(ctx, adminID, id)
	}
	return nil
}

func (s OrderFacadeStub) DeliverAllNew(ctx context.Context, adminID int64) (int, error) {
	if s.DeliverAllFn != nil {
		return s.DeliverAllFn(ctx, adminID)
	}
	return 0, nil
}

func (s OrderFacadeStub) MoveToSales(ctx context.Context, adminID int64, ids []string) (int, error) {
	if s.MoveToSalesFn != nil {
		return s.MoveToSalesFn(ctx, adminID, ids)
	}
	return len(ids), nil
}

func (s OrderFacadeStub) MoveAllCompleted(ctx context.Context, adminID int64) (int, error) {
	if s.MoveAllCompletedFn != nil {
		return s.MoveAllCompletedFn(ctx, adminID)
	}
	return 0, nil
}

// AlertFacadeStub hands out a fixed alert channel.
type AlertFacadeStub struct {
	Alerts       chan model.NewOrderAlert
	Unsubscribed chan struct{}
}

func (s AlertFacadeStub) SubscribeAlerts() (<-chan model.NewOrderAlert, func()) {
	return s.Alerts, func() {
		if s.Unsubscribed != nil {
			close(s.Unsubscribed)
		}
	}
}

// SalesFacadeStub provides canned reports.
type SalesFacadeStub struct {
	SalesFn     func(context.Context, string) (*usecase.SalesReport, error)
	WeeklyFn    func(context.Context) (*model.Invoice, error)
	MonthlyFn   func(context.Context) (*model.Invoice, error)
	DashboardFn func(context.Context) (*model.Dashboard, error)
}

func (s SalesFacadeStub) SalesReport(ctx context.Context, month string) (*usecase.SalesReport, error) {
	if s.SalesFn != nil {
		return s.SalesFn(ctx, month)
	}
	return &usecase.SalesReport{}, nil
}

func (s SalesFacadeStub) WeeklyInvoice(ctx context.Context) (*model.Invoice, error) {
	if s.WeeklyFn != nil {
		return s.WeeklyFn(ctx)
	}
	return &model.Invoice{}, nil
}

func (s SalesFacadeStub) MonthlyInvoice(ctx context.Context) (*model.Invoice, error) {
	if s.MonthlyFn != nil {
		return s.MonthlyFn(ctx)
	}
	return &model.Invoice{}, nil
}

func (s SalesFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &model.Dashboard{}, nil
}

// UserFacadeStub provides canned customer data.
type UserFacadeStub struct {
	UsersFn      func(context.Context) ([]model.User, error)
	DeleteFn     func(context.Context, int64, string) error
	EngagementFn func(context.Context) (*usecase.Engagement, error)
}

func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, adminID int64, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, adminID, id)
	}
	return nil
}

func (s UserFacadeStub) Engagement(ctx context.Context) (*usecase.Engagement, error) {
	if s.EngagementFn != nil {
		return s.EngagementFn(ctx)
	}
	return &usecase.Engagement{}, nil
}

// ProductFacadeStub provides canned catalog pages.
type ProductFacadeStub struct {
	CatalogFn func(context.Context, model.ProductFilter) (*model.ProductPage, error)
	UpdateFn  func(context.Context, int64, string, model.ProductUpdate) (*model.Product, error)
}

func (s ProductFacadeStub) ProductCatalog(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx, filter)
	}
	return &model.ProductPage{Page: max(filter.Page, 1)}, nil
}

func (s ProductFacadeStub) UpdateProduct(ctx context.Context, adminID int64, id string, update model.ProductUpdate) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, adminID, id, update)
	}
	return &model.Product{ID: id, Name: update.Name, Price: update.Price}, nil
}

// AuditFacadeStub returns canned audit entries.
type AuditFacadeStub struct {
	AuditFn func(context.Context, model.AuditFilter) ([]model.AuditEntry, error)
}

func (s AuditFacadeStub) AuditLog(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error) {
	if s.AuditFn != nil {
		return s.AuditFn(ctx, filter)
	}
	return nil, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated operator.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// AdminFacadeStub aggregates facade dependencies for HTTP layer tests.
type AdminFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	AlertFacadeStub
	SalesFacadeStub
	UserFacadeStub
	ProductFacadeStub
	AuditFacadeStub
}
