package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/sales"
	"github.com/polkiloo/salesdesk/internal/snapshot"
)

// SalesReport is the archived-sales view for one month.
type SalesReport struct {
	Months      []model.Month
	Selected    model.Month
	HasSelected bool
	Orders      []model.Order
	Totals      model.SalesTotals
	BestSellers []model.BestSeller
}

// ReportUseCase computes sales reports, invoices, and the dashboard summary.
type ReportUseCase struct {
	store    ReportStore
	snapshot *snapshot.Orders
	loc      *time.Location
	now      func() time.Time
}

// NewReportUseCase constructs ReportUseCase computing calendar boundaries in loc.
func NewReportUseCase(store ReportStore, snap *snapshot.Orders, loc *time.Location) *ReportUseCase {
	return &ReportUseCase{store: store, snapshot: snap, loc: loc, now: time.Now}
}

// Sales builds the report for monthKey, or for the newest month with orders
// when monthKey is empty.
func (u *ReportUseCase) Sales(ctx context.Context, monthKey string) (*SalesReport, error) {
	orders, _, err := cachedOrders(ctx, u.store, u.snapshot)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{Months: sales.MonthOptions(orders, u.loc)}
	if monthKey != "" {
		m, err := sales.ParseMonth(monthKey)
		if err != nil {
			return nil, err
		}
		report.Selected, report.HasSelected = m, true
	} else {
		report.Selected, report.HasSelected = sales.DefaultMonth(orders, u.loc)
	}
	if !report.HasSelected {
		report.Totals = sales.Totals(nil)
		return report, nil
	}

	report.Orders = sales.FilterByMonth(orders, report.Selected, u.loc)
	report.Totals = sales.Totals(report.Orders)
	report.BestSellers = sales.BestSellers(report.Orders, sales.BestSellerLimit)
	return report, nil
}

// WeeklyInvoice rolls up archived orders of the current week.
func (u *ReportUseCase) WeeklyInvoice(ctx context.Context) (*model.Invoice, error) {
	orders, _, err := cachedOrders(ctx, u.store, u.snapshot)
	if err != nil {
		return nil, err
	}
	inv := sales.WeeklyInvoice(orders, u.now(), u.loc)
	return &inv, nil
}

// MonthlyInvoice rolls up archived orders of the current calendar month.
func (u *ReportUseCase) MonthlyInvoice(ctx context.Context) (*model.Invoice, error) {
	orders, _, err := cachedOrders(ctx, u.store, u.snapshot)
	if err != nil {
		return nil, err
	}
	inv := sales.MonthlyInvoice(orders, u.now(), u.loc)
	return &inv, nil
}

// Dashboard gathers the store counters and paid sales concurrently. Any
// failed request fails the whole summary.
func (u *ReportUseCase) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var (
		dash model.Dashboard
		paid []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := u.store.Metrics(gctx)
		if err != nil {
			return err
		}
		dash.Metrics = *m
		return nil
	})
	g.Go(func() error {
		var err error
		paid, err = u.store.ListPaidOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dash.RecentOrders, err = u.store.RecentOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dash.RecentUsers, err = u.store.RecentUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dash.LowStock, err = u.store.LowStock(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	dash.TotalSales, dash.DailySales = sales.PaidSales(paid, u.now(), u.loc)
	return &dash, nil
}
