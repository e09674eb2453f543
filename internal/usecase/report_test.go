package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/snapshot"
	testhelpers "github.com/polkiloo/salesdesk/internal/test"
)

func newReportFixture(store *testhelpers.StoreClientStub, now time.Time) *ReportUseCase {
	uc := NewReportUseCase(store, snapshot.New[[]model.Order](time.Minute), london)
	uc.now = func() time.Time { return now }
	return uc
}

func line(serial, name string, qty int, price string) model.OrderItem {
	return model.OrderItem{SerialNumber: serial, Name: name, Quantity: qty, Price: dec(price)}
}

func salesOrders() []model.Order {
	return []model.Order{
		archivedOrder("feb", time.Date(2025, time.February, 20, 10, 0, 0, 0, london), "30", line("S1", "Shirt", 3, "10")),
		archivedOrder("mar1", time.Date(2025, time.March, 2, 10, 0, 0, 0, london), "25", line("S1", "Shirt", 1, "10"), line("S2", "Hat", 1, "15")),
		archivedOrder("mar2", time.Date(2025, time.March, 31, 23, 30, 0, 0, london), "20", line("S2", "Hat", 1, "20")),
		newOrder("mar-new", time.Date(2025, time.March, 15, 9, 0, 0, 0, london), "S9"),
	}
}

func TestReportUseCaseSalesDefaultsToNewestMonth(t *testing.T) {
	store := &testhelpers.StoreClientStub{Orders: salesOrders()}
	uc := newReportFixture(store, time.Now())

	report, err := uc.Sales(context.Background(), "")
	if err != nil {
		t.Fatalf("sales returned error: %v", err)
	}
	if !report.HasSelected || report.Selected != (model.Month{Year: 2025, Month: time.March}) {
		t.Fatalf("unexpected selected month %+v", report.Selected)
	}
	if len(report.Months) != 2 || report.Months[0].Month != time.March || report.Months[1].Month != time.February {
		t.Fatalf("unexpected month options %+v", report.Months)
	}
	if len(report.Orders) != 2 {
		t.Fatalf("expected archived March orders only, got %d", len(report.Orders))
	}
	if !report.Totals.TotalSales.Equal(dec("45")) || report.Totals.TotalOrders != 2 {
		t.Fatalf("unexpected totals %+v", report.Totals)
	}
	if len(report.BestSellers) != 2 || report.BestSellers[0].SerialNumber != "S2" || report.BestSellers[0].Quantity != 2 {
		t.Fatalf("unexpected best sellers %+v", report.BestSellers)
	}
}

func TestReportUseCaseSalesDefaultMonthCountsUnarchivedOrders(t *testing.T) {
	orders := append(salesOrders(), newOrder("apr-new", time.Date(2025, time.April, 3, 9, 0, 0, 0, london), "S9"))
	store := &testhelpers.StoreClientStub{Orders: orders}
	uc := newReportFixture(store, time.Now())

	report, err := uc.Sales(context.Background(), "")
	if err != nil {
		t.Fatalf("sales returned error: %v", err)
	}
	if report.Selected != (model.Month{Year: 2025, Month: time.April}) {
		t.Fatalf("expected newest month of any order, got %+v", report.Selected)
	}
	if len(report.Orders) != 0 || report.Totals.TotalOrders != 0 || !report.Totals.TotalSales.IsZero() {
		t.Fatalf("expected empty April report, got %+v", report.Totals)
	}
}

func TestReportUseCaseSalesSelectedMonth(t *testing.T) {
	store := &testhelpers.StoreClientStub{Orders: salesOrders()}
	uc := newReportFixture(store, time.Now())

	for _, key := range []string{"2025-02", "February 2025"} {
		report, err := uc.Sales(context.Background(), key)
		if err != nil {
			t.Fatalf("sales(%q) returned error: %v", key, err)
		}
		if report.Selected.Month != time.February || len(report.Orders) != 1 || report.Orders[0].ID != "feb" {
			t.Fatalf("unexpected report for %q: %+v", key, report)
		}
	}

	report, err := uc.Sales(context.Background(), "2024-01")
	if err != nil {
		t.Fatalf("sales returned error: %v", err)
	}
	if len(report.Orders) != 0 || !report.Totals.TotalSales.IsZero() {
		t.Fatalf("expected empty month, got %+v", report)
	}
	if store.CallCount("ListOrders") != 1 {
		t.Fatalf("expected snapshot reuse, calls %v", store.Calls())
	}
}

func TestReportUseCaseSalesInvalidMonth(t *testing.T) {
	uc := newReportFixture(&testhelpers.StoreClientStub{}, time.Now())
	if _, err := uc.Sales(context.Background(), "13/2025"); !errors.Is(err, domainErrors.ErrInvalidMonth) {
		t.Fatalf("expected invalid month, got %v", err)
	}
}

func TestReportUseCaseSalesNoOrders(t *testing.T) {
	uc := newReportFixture(&testhelpers.StoreClientStub{}, time.Now())
	report, err := uc.Sales(context.Background(), "")
	if err != nil {
		t.Fatalf("sales returned error: %v", err)
	}
	if report.HasSelected || len(report.Months) != 0 || report.Totals.TotalOrders != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestReportUseCaseInvoices(t *testing.T) {
	// Wednesday 5 March 2025; the week runs Sunday 2 March to Saturday 8 March.
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, london)
	store := &testhelpers.StoreClientStub{Orders: salesOrders()}
	uc := newReportFixture(store, now)

	weekly, err := uc.WeeklyInvoice(context.Background())
	if err != nil {
		t.Fatalf("weekly invoice returned error: %v", err)
	}
	if weekly.OrderCount != 1 || !weekly.TotalGrossPrice.Equal(dec("25")) {
		t.Fatalf("unexpected weekly invoice %+v", weekly)
	}
	if weekly.TotalStripeFees == nil || !weekly.TotalStripeFees.Equal(dec("0.625")) {
		t.Fatalf("unexpected stripe fees %v", weekly.TotalStripeFees)
	}

	monthly, err := uc.MonthlyInvoice(context.Background())
	if err != nil {
		t.Fatalf("monthly invoice returned error: %v", err)
	}
	if monthly.OrderCount != 2 || !monthly.TotalNetPrice.Equal(dec("45")) || monthly.TotalStripeFees != nil {
		t.Fatalf("unexpected monthly invoice %+v", monthly)
	}
}

func TestReportUseCaseInvoiceFetchError(t *testing.T) {
	store := &testhelpers.StoreClientStub{ListOrdersFn: func(context.Context) ([]model.Order, error) {
		return nil, errors.New("down")
	}}
	uc := newReportFixture(store, time.Now())
	if _, err := uc.WeeklyInvoice(context.Background()); err == nil {
		t.Fatal("expected weekly invoice error")
	}
	if _, err := uc.MonthlyInvoice(context.Background()); err == nil {
		t.Fatal("expected monthly invoice error")
	}
	if _, err := uc.Sales(context.Background(), ""); err == nil {
		t.Fatal("expected sales error")
	}
}

func TestReportUseCaseDashboard(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, london)
	paidRecent := newOrder("p1", now.Add(-48*time.Hour), "A")
	paidOld := newOrder("p2", now.Add(-60*24*time.Hour), "B")
	unpaid := newOrder("u1", now.Add(-time.Hour), "C")
	unpaid.IsPaid = false

	store := &testhelpers.StoreClientStub{
		Orders:          []model.Order{paidRecent, paidOld, unpaid},
		StoreMetrics:    model.StoreMetrics{TotalUsers: 12, TotalOrders: 3, NewUsers: 2},
		RecentOrderList: []model.Order{unpaid},
		RecentUserList:  []model.User{{ID: "u"}},
		LowStockRaw:     []json.RawMessage{json.RawMessage(`{"name":"Hat","stock":1}`)},
	}
	uc := newReportFixture(store, now)

	dash, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if dash.Metrics.TotalUsers != 12 || dash.Metrics.NewUsers != 2 {
		t.Fatalf("unexpected metrics %+v", dash.Metrics)
	}
	if !dash.TotalSales.Equal(dec("20")) {
		t.Fatalf("expected paid total 20, got %s", dash.TotalSales)
	}
	if len(dash.DailySales) != 1 || !dash.DailySales[0].Amount.Equal(dec("10")) {
		t.Fatalf("unexpected daily series %+v", dash.DailySales)
	}
	if len(dash.RecentOrders) != 1 || len(dash.RecentUsers) != 1 || len(dash.LowStock) != 1 {
		t.Fatalf("unexpected recent lists %+v", dash)
	}
}

func TestReportUseCaseDashboardFailure(t *testing.T) {
	store := &testhelpers.StoreClientStub{MetricsFn: func(context.Context) (*model.StoreMetrics, error) {
		return nil, domainErrors.ErrUnauthorized
	}}
	uc := newReportFixture(store, time.Now())
	_, err := uc.Dashboard(context.Background())
	if !errors.Is(err, domainErrors.ErrUnauthorized) || !strings.HasPrefix(err.Error(), "load dashboard:") {
		t.Fatalf("expected wrapped unauthorized error, got %v", err)
	}
}
