package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// ListUsers fetches every store customer including carts and wishlists.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a customer account.
func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// RecentUsers fetches the latest registered customers.
func (c *HTTPClient) RecentUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/recent-users", nil, nil, &users); err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return users, nil
}

// Metrics fetches the store's dashboard counters.
func (c *HTTPClient) Metrics(ctx context.Context) (*model.StoreMetrics, error) {
	var m model.StoreMetrics
	if err := c.do(ctx, http.MethodGet, "/api/admin/metrics", nil, nil, &m); err != nil {
		return nil, fmt.Errorf("store metrics: %w", err)
	}
	return &m, nil
}

// LowStock fetches products running out of stock. Items are passed through unchanged.
func (c *HTTPClient) LowStock(ctx context.Context) ([]json.RawMessage, error) {
	var products []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/admin/low-stock", nil, nil, &products); err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return products, nil
}
