package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 50
	defaultMaxPages = 100
)

// StatusError reports an unexpected HTTP status from the store API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store api error: %s", e.Status)
}

// Client exposes the store API operations used by the dashboard.
type Client interface {
	Login(ctx context.Context) error
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListPaidOrders(ctx context.Context) ([]model.Order, error)
	CancelOrder(ctx context.Context, id string) error
	MarkDelivered(ctx context.Context, id string) error
	MoveToSales(ctx context.Context, ids []string) (int, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error
	Metrics(ctx context.Context) (*model.StoreMetrics, error)
	RecentOrders(ctx context.Context) ([]model.Order, error)
	RecentUsers(ctx context.Context) ([]model.User, error)
	LowStock(ctx context.Context) ([]json.RawMessage, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error)
}

// Options tune the HTTP client.
type Options struct {
	Username  string
	Password  string
	PageSize  int
	MaxPages  int
	Timeout   time.Duration
	Transport http.RoundTripper
}

// HTTPClient implements Client via the store REST API. The admin session
// cookie obtained by Login is kept in the client's cookie jar.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	opts       Options
}

// NewHTTPClient creates a store API client for baseURL.
func NewHTTPClient(baseURL string, opts Options, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("store api url must be absolute")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &HTTPClient{
		baseURL: parsed,
		logger:  logger.With(slog.String("component", "storeapi")),
		opts:    opts,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Jar:       jar,
			Transport: opts.Transport,
		},
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Login opens an admin session against the store API.
func (c *HTTPClient) Login(ctx context.Context) error {
	var resp loginResponse
	body := loginRequest{Username: c.opts.Username, Password: c.opts.Password}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", nil, body, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !resp.IsAdmin {
		return fmt.Errorf("login: account is not an admin: %w", domainErrors.ErrUnauthorized)
	}
	c.logger.Info("store api session opened")
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, p string, query url.Values, in, out any) error {
	if in == nil {
		return c.send(ctx, method, p, query, nil, "", out)
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.send(ctx, method, p, query, bytes.NewReader(payload), "application/json", out)
}

func (c *HTTPClient) send(ctx context.Context, method, p string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", domainErrors.ErrInvalidResponse, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		c.logger.Warn("store api rejected session", slog.String("method", method), slog.String("path", p), slog.Int("status", resp.StatusCode))
		return domainErrors.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domainErrors.ErrNotFound
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("store api request failed",
			slog.String("method", method),
			slog.String("path", p),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
}

// IsUnauthorized reports whether err means the store API session is gone.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domainErrors.ErrUnauthorized)
}
