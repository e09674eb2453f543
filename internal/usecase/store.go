package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/snapshot"
)

// OrderStore is the part of the store API used for order fulfilment.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	CancelOrder(ctx context.Context, id string) error
	MarkDelivered(ctx context.Context, id string) error
	MoveToSales(ctx context.Context, ids []string) (int, error)
}

// ReportStore is the part of the store API read by sales reports and the dashboard.
type ReportStore interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListPaidOrders(ctx context.Context) ([]model.Order, error)
	Metrics(ctx context.Context) (*model.StoreMetrics, error)
	RecentOrders(ctx context.Context) ([]model.Order, error)
	RecentUsers(ctx context.Context) ([]model.User, error)
	LowStock(ctx context.Context) ([]json.RawMessage, error)
}

// UserStore is the part of the store API used for customer management.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// ProductStore is the part of the store API used for catalog management.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error)
}

type orderLister interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// cachedOrders serves the snapshot when it is fresh and fetches otherwise.
func cachedOrders(ctx context.Context, store orderLister, snap *snapshot.Orders) ([]model.Order, time.Time, error) {
	if orders, at, ok := snap.Get(); ok {
		return orders, at, nil
	}
	return refreshOrders(ctx, store, snap)
}

// refreshOrders fetches the order list and replaces the snapshot. A failed
// fetch leaves the previous snapshot in place, and a fetch overtaken by a
// mutation is returned to the caller without being cached.
func refreshOrders(ctx context.Context, store orderLister, snap *snapshot.Orders) ([]model.Order, time.Time, error) {
	gen := snap.Generation()
	orders, err := store.ListOrders(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("fetch orders: %w", err)
	}
	at, _ := snap.SetIfCurrent(orders, gen)
	return orders, at, nil
}
