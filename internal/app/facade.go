package app

import (
	"context"
	"log/slog"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/usecase"
)

// StoreSession opens an admin session against the store API.
type StoreSession interface {
	Login(ctx context.Context) error
}

// StatusReporter exposes the state of the new-order watcher.
type StatusReporter interface {
	Status() model.WatcherStatus
}

// AlertSubscriber hands out live new-order alert streams.
type AlertSubscriber interface {
	Subscribe() (<-chan model.NewOrderAlert, func())
}

// FacadeDeps groups the collaborators of AdminFacade.
type FacadeDeps struct {
	Auth     *usecase.AuthUseCase
	Orders   *usecase.OrderUseCase
	Reports  *usecase.ReportUseCase
	Users    *usecase.UserUseCase
	Products *usecase.ProductUseCase
	Audit    *usecase.AuditUseCase
	Session  StoreSession
	Watcher  StatusReporter
	Alerts   AlertSubscriber
	Logger   *slog.Logger
}

// AdminFacade is the single entry point of the HTTP layer into the dashboard.
type AdminFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	reports  *usecase.ReportUseCase
	users    *usecase.UserUseCase
	products *usecase.ProductUseCase
	audit    *usecase.AuditUseCase
	session  StoreSession
	watcher  StatusReporter
	alerts   AlertSubscriber
	logger   *slog.Logger
}

func NewAdminFacade(d FacadeDeps) *AdminFacade {
	return &AdminFacade{
		auth:     d.Auth,
		orders:   d.Orders,
		reports:  d.Reports,
		users:    d.Users,
		products: d.Products,
		audit:    d.Audit,
		session:  d.Session,
		watcher:  d.Watcher,
		alerts:   d.Alerts,
		logger:   d.Logger,
	}
}

// Authenticate signs the operator in and refreshes the store session.
// A failed store login does not block the dashboard sign-in.
func (f *AdminFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	if err != nil {
		return "", err
	}
	if err := f.session.Login(ctx); err != nil {
		f.logger.WarnContext(ctx, "store login failed", slog.String("error", err.Error()))
	}
	return token, nil
}

func (f *AdminFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *AdminFacade) OrderBoard(ctx context.Context) (*usecase.OrderBoard, error) {
	return f.orders.Board(ctx)
}

func (f *AdminFacade) WatcherStatus() model.WatcherStatus {
	return f.watcher.Status()
}

func (f *AdminFacade) CancelOrder(ctx context.Context, adminID int64, id string) error {
	return f.orders.Cancel(ctx, adminID, id)
}

func (f *AdminFacade) MarkDelivered(ctx context.Context, adminID int64, id string) error {
	return f.orders.MarkDelivered(ctx, adminID, id)
}

func (f *AdminFacade) DeliverAllNew(ctx context.Context, adminID int64) (int, error) {
	return f.orders.DeliverAllNew(ctx, adminID)
}

func (f *AdminFacade) MoveToSales(ctx context.Context, adminID int64, ids []string) (int, error) {
	return f.orders.MoveToSales(ctx, adminID, ids)
}

func (f *AdminFacade) MoveAllCompleted(ctx context.Context, adminID int64) (int, error) {
	return f.orders.MoveAllCompleted(ctx, adminID)
}

func (f *AdminFacade) SubscribeAlerts() (<-chan model.NewOrderAlert, func()) {
	return f.alerts.Subscribe()
}

func (f *AdminFacade) SalesReport(ctx context.Context, month string) (*usecase.SalesReport, error) {
	return f.reports.Sales(ctx, month)
}

func (f *AdminFacade) WeeklyInvoice(ctx context.Context) (*model.Invoice, error) {
	return f.reports.WeeklyInvoice(ctx)
}

func (f *AdminFacade) MonthlyInvoice(ctx context.Context) (*model.Invoice, error) {
	return f.reports.MonthlyInvoice(ctx)
}

func (f *AdminFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.reports.Dashboard(ctx)
}

func (f *AdminFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.Users(ctx)
}

func (f *AdminFacade) DeleteUser(ctx context.Context, adminID int64, id string) error {
	return f.users.Delete(ctx, adminID, id)
}

func (f *AdminFacade) Engagement(ctx context.Context) (*usecase.Engagement, error) {
	return f.users.Engagement(ctx)
}

func (f *AdminFacade) ProductCatalog(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	return f.products.Catalog(ctx, filter)
}

func (f *AdminFacade) UpdateProduct(ctx context.Context, adminID int64, id string, update model.ProductUpdate) (*model.Product, error) {
	return f.products.Update(ctx, adminID, id, update)
}

func (f *AdminFacade) AuditLog(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error) {
	return f.audit.List(ctx, filter)
}

// orderSource feeds the watcher with fresh order lists and store logins.
type orderSource struct {
	orders  *usecase.OrderUseCase
	session StoreSession
}

func (s orderSource) RefreshOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.Refresh(ctx)
}

func (s orderSource) LoginStore(ctx context.Context) error {
	return s.session.Login(ctx)
}
