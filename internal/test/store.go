package test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// StoreClientStub is an in-memory store API. Function overrides take
// precedence over the canned data. Safe for concurrent use.
type StoreClientStub struct {
	LoginFn          func(context.Context) error
	ListOrdersFn     func(context.Context) ([]model.Order, error)
	ListPaidOrdersFn func(context.Context) ([]model.Order, error)
	CancelOrderFn    func(context.Context, string) error
	MarkDeliveredFn  func(context.Context, string) error
	MoveToSalesFn    func(context.Context, []string) (int, error)
	ListUsersFn      func(context.Context) ([]model.User, error)
	DeleteUserFn     func(context.Context, string) error
	MetricsFn        func(context.Context) (*model.StoreMetrics, error)
	ListProductsFn   func(context.Context) ([]model.Product, error)
	UpdateProductFn  func(context.Context, string, model.ProductUpdate) (*model.Product, error)

	Orders          []model.Order
	Users           []model.User
	StoreMetrics    model.StoreMetrics
	RecentOrderList []model.Order
	RecentUserList  []model.User
	LowStockRaw     []json.RawMessage
	Products        []model.Product
	Updates         []model.ProductUpdate

	mu    sync.Mutex
	calls []string
}

func (s *StoreClientStub) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

// Calls returns the invoked operations in order, formatted as "Op" or "Op:arg".
func (s *StoreClientStub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount reports how many times op was invoked.
func (s *StoreClientStub) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == op || len(c) > len(op) && c[:len(op)+1] == op+":" {
			n++
		}
	}
	return n
}

func (s *StoreClientStub) Login(ctx context.Context) error {
	s.record("Login")
	if s.LoginFn != nil {
		return s.LoginFn(ctx)
	}
	return nil
}

func (s *StoreClientStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.record("ListOrders")
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx)
	}
	return s.Orders, nil
}

func (s *StoreClientStub) ListPaidOrders(ctx context.Context) ([]model.Order, error) {
	s.record("ListPaidOrders")
	if s.ListPaidOrdersFn != nil {
		return s.ListPaidOrdersFn(ctx)
	}
	var paid []model.Order
	for _, o := range s.Orders {
		if o.IsPaid {
			paid = append(paid, o)
		}
	}
	return paid, nil
}

func (s *StoreClientStub) CancelOrder(ctx context.Context, id string) error {
	s.record("CancelOrder:" + id)
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, id)
	}
	return nil
}

func (s *StoreClientStub) MarkDelivered(ctx context.Context, id string) error {
	s.record("MarkDelivered:" + id)
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, id)
	}
	return nil
}

func (s *StoreClientStub) MoveToSales(ctx context.Context, ids []string) (int, error) {
	s.record("MoveToSales")
	if s.MoveToSalesFn != nil {
		return s.MoveToSalesFn(ctx, ids)
	}
	return len(ids), nil
}

func (s *StoreClientStub) ListUsers(ctx context.Context) ([]model.User, error) {
	s.record("ListUsers")
	if s.ListUsersFn != nil {
		return s.ListUsersFn(ctx)
	}
	return s.Users, nil
}

func (s *StoreClientStub) DeleteUser(ctx context.Context, id string) error {
	s.record("DeleteUser:" + id)
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s *StoreClientStub) Metrics(ctx context.Context) (*model.StoreMetrics, error) {
	s.record("Metrics")
	if s.MetricsFn != nil {
		return s.MetricsFn(ctx)
	}
	m := s.StoreMetrics
	return &m, nil
}

func (s *StoreClientStub) RecentOrders(ctx context.Context) ([]model.Order, error) {
	s.record("RecentOrders")
	return s.RecentOrderList, nil
}

func (s *StoreClientStub) RecentUsers(ctx context.Context) ([]model.User, error) {
	s.record("RecentUsers")
	return s.RecentUserList, nil
}

func (s *StoreClientStub) LowStock(ctx context.Context) ([]json.RawMessage, error) {
	s.record("LowStock")
	return s.LowStockRaw, nil
}

func (s *StoreClientStub) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.record("ListProducts")
	if s.ListProductsFn != nil {
		return s.ListProductsFn(ctx)
	}
	return s.Products, nil
}

// UpdateProduct records the update and, without an override, echoes it back
// applied to the matching canned product.
func (s *StoreClientStub) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	s.record("UpdateProduct:" + id)
	s.mu.Lock()
	s.Updates = append(s.Updates, update)
	s.mu.Unlock()
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, update)
	}
	return &model.Product{
		ID:               id,
		Name:             update.Name,
		Description:      update.Description,
		Price:            update.Price,
		ProductCategory:  update.ProductCategory,
		InterestCategory: update.InterestCategory,
		GenderCategory:   update.GenderCategory,
		SaleCategory:     update.SaleCategory,
		IsNewArrival:     update.IsNewArrival,
		IsOnSale:         update.IsOnSale,
		CountInStock:     update.CountInStock,
		Size:             update.Size,
		OnOff:            update.OnOff,
		SerialNumber:     update.SerialNumber,
		Images:           update.ExistingImages,
	}, nil
}
