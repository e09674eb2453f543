package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler, opts Options) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL, opts, testLogger())
	require.NoError(t, err)
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	_, err := NewHTTPClient("://bad-url", Options{}, testLogger())
	require.Error(t, err)

	_, err = NewHTTPClient("/relative", Options{}, testLogger())
	require.Error(t, err)

	client, err := NewHTTPClient("http://store.local", Options{}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, client.opts.PageSize)
	assert.Equal(t, defaultMaxPages, client.opts.MaxPages)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	var authorized atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "admin" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]bool{"isAdmin": true})
	})
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		authorized.Store(true)
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, mux, Options{Username: "admin", Password: "secret"})

	_, err := client.ListUsers(context.Background())
	require.ErrorIs(t, err, domainErrors.ErrUnauthorized)

	require.NoError(t, client.Login(context.Background()))
	_, err = client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.True(t, authorized.Load())
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"isAdmin":false}`))
	}), Options{})

	err := client.Login(context.Background())
	require.ErrorIs(t, err, domainErrors.ErrUnauthorized)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, check: func(t *testing.T, err error) {
			assert.True(t, IsUnauthorized(err))
		}},
		{name: "forbidden", status: http.StatusForbidden, check: func(t *testing.T, err error) {
			assert.True(t, IsUnauthorized(err))
		}},
		{name: "not found", status: http.StatusNotFound, check: func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domainErrors.ErrNotFound)
		}},
		{name: "server error", status: http.StatusBadGateway, check: func(t *testing.T, err error) {
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}), Options{})
			err := client.CancelOrder(context.Background(), "o-1")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestUnexpectedStatusIsLogged(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, Options{}, slog.New(handler))
	require.NoError(t, err)

	_, err = client.ListUsers(context.Background())
	require.Error(t, err)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestMalformedPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}), Options{})

	_, err := client.ListUsers(context.Background())
	require.ErrorIs(t, err, domainErrors.ErrInvalidResponse)
}

func TestStoreMetrics(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/metrics", r.URL.Path)
		_, _ = w.Write([]byte(`{"totalUsers":12,"totalOrders":40,"newUsers":3}`))
	}), Options{})

	m, err := client.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, m.TotalUsers)
	assert.Equal(t, 40, m.TotalOrders)
	assert.Equal(t, 3, m.NewUsers)
}

func TestListUsersDecodesCartAndWishlist(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"u1","firstName":"Ada","email":"ada@example.com","newsletter":true,
			"cart":[{"product":"p1","name":"Hoodie","quantity":2}],
			"wishlist":[{"product":"p2","name":"Cap"}]}]`))
	}), Options{})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.True(t, users[0].Newsletter)
	require.Len(t, users[0].Cart, 1)
	assert.Equal(t, "p1", users[0].Cart[0].ProductID)
	assert.Equal(t, 2, users[0].Cart[0].Quantity)
	require.Len(t, users[0].Wishlist, 1)
	assert.Equal(t, "Cap", users[0].Wishlist[0].Name)
}

func TestOrderPriceDecoding(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"o1","createdAt":"2025-03-01T10:00:00.000Z","totalPrice":29.99,
			"orderItems":[{"name":"Tee","size":"M","quantity":1,"price":24.99}]}]`))
	}), Options{})

	orders, err := client.RecentOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TotalPrice.Equal(decimal.RequireFromString("29.99")))
	assert.Equal(t, "N/A", orders[0].OrderItems[0].Serial())
	assert.Equal(t, time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC), orders[0].CreatedAt.UTC())
}

func TestLowStockPassesItemsThrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/low-stock", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"p1","name":"Bunny","stock":{"S":1}},{"_id":"p2"}]`))
	}), Options{})

	products, err := client.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.JSONEq(t, `{"_id":"p1","name":"Bunny","stock":{"S":1}}`, string(products[0]))
}
