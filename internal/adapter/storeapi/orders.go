package storeapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// ListOrders fetches every order page by page until a short page is returned.
// Orders repeated across pages are kept once, and a page holding nothing new
// ends the listing since the store is then ignoring the page parameter.
func (c *HTTPClient) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0, c.opts.PageSize)
	seen := make(map[string]struct{}, c.opts.PageSize)
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(c.opts.PageSize))

		var batch []model.Order
		if err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &batch); err != nil {
			return nil, fmt.Errorf("list orders page %d: %w", page, err)
		}

		added := 0
		for _, o := range batch {
			if o.ID != "" {
				if _, dup := seen[o.ID]; dup {
					continue
				}
				seen[o.ID] = struct{}{}
			}
			orders = append(orders, o)
			added++
		}

		if len(batch) < c.opts.PageSize {
			return orders, nil
		}
		if added == 0 {
			c.logger.Warn("order page repeated, stopping", slog.Int("page", page), slog.Int("orders", len(orders)))
			return orders, nil
		}
		if page >= c.opts.MaxPages {
			c.logger.Warn("order listing truncated", slog.Int("pages", page), slog.Int("orders", len(orders)))
			return orders, nil
		}
	}
}

// ListPaidOrders fetches orders flagged as paid.
func (c *HTTPClient) ListPaidOrders(ctx context.Context) ([]model.Order, error) {
	query := url.Values{}
	query.Set("isPaid", "true")

	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &orders); err != nil {
		return nil, fmt.Errorf("list paid orders: %w", err)
	}
	return orders, nil
}

// CancelOrder deletes a pending order.
func (c *HTTPClient) CancelOrder(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("cancel order %s: %w", id, err)
	}
	return nil
}

// MarkDelivered flags an order as delivered.
func (c *HTTPClient) MarkDelivered(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id)+"/delivered", nil, struct{}{}, nil); err != nil {
		return fmt.Errorf("mark order %s delivered: %w", id, err)
	}
	return nil
}

type moveRequest struct {
	OrderIDs []string `json:"orderIds"`
}

type moveResponse struct {
	ModifiedCount *int `json:"modifiedCount"`
}

// MoveToSales archives the given orders and returns how many the store moved.
func (c *HTTPClient) MoveToSales(ctx context.Context, ids []string) (int, error) {
	var resp moveResponse
	if err := c.do(ctx, http.MethodPut, "/api/orders/move-to-sales", nil, moveRequest{OrderIDs: ids}, &resp); err != nil {
		return 0, fmt.Errorf("move orders to sales: %w", err)
	}
	if resp.ModifiedCount == nil {
		return 0, fmt.Errorf("move orders to sales: missing modifiedCount: %w", domainErrors.ErrInvalidResponse)
	}
	return *resp.ModifiedCount, nil
}

// RecentOrders fetches the store's latest orders for the dashboard.
func (c *HTTPClient) RecentOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/recent-orders", nil, nil, &orders); err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return orders, nil
}
