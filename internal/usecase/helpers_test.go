package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/metrics"
	testhelpers "github.com/polkiloo/salesdesk/internal/test"
)

var london = func() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		panic(err)
	}
	return loc
}()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuditFixture() (*AuditUseCase, *testhelpers.AuditRepositoryStub, *metrics.Metrics) {
	repo := &testhelpers.AuditRepositoryStub{}
	m := metrics.New(prometheus.NewRegistry())
	return NewAuditUseCase(repo, m, discardLogger()), repo, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newOrder(id string, created time.Time, serials ...string) model.Order {
	o := model.Order{ID: id, CreatedAt: created, IsPaid: true, TotalPrice: dec("10")}
	for _, s := range serials {
		o.OrderItems = append(o.OrderItems, model.OrderItem{SerialNumber: s, Name: "item " + s, Quantity: 1, Price: dec("10")})
	}
	return o
}

func completedOrder(id string, created time.Time) model.Order {
	o := newOrder(id, created, "A")
	o.IsDelivered = true
	return o
}

func archivedOrder(id string, created time.Time, total string, items ...model.OrderItem) model.Order {
	return model.Order{
		ID:             id,
		CreatedAt:      created,
		IsPaid:         true,
		IsDelivered:    true,
		IsMovedToSales: true,
		TotalPrice:     dec(total),
		OrderItems:     items,
	}
}
