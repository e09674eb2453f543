package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string `validate:"required"`
	DatabaseURI string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`

	StoreAPIURL      string `validate:"required,url"`
	StoreAPIUsername string
	StoreAPIPassword string
	StoreTimezone    string `validate:"required,timezone"`
	OrdersPageSize   int    `validate:"gte=1"`
	OrdersMaxPages   int    `validate:"gte=1"`

	AuthSecret    string        `validate:"required"`
	AuthStrategy  string        `validate:"oneof=hmac jwt"`
	AuthTokenTTL  time.Duration `validate:"gt=0"`
	AdminLogin    string
	AdminPassword string `validate:"required_with=AdminLogin"`

	OrderPollInterval time.Duration `validate:"gt=0"`
	SnapshotTTL       time.Duration `validate:"gt=0"`
	BatchConcurrency  int           `validate:"gte=1"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`

	AllowedOrigins  []string `validate:"dive,required"`
	KafkaBrokers    []string `validate:"dive,hostname_port"`
	KafkaAlertTopic string   `validate:"required_with=KafkaBrokers"`
}

const (
	defaultRunAddress        = ":8080"
	defaultLogLevel          = "info"
	defaultAuthSecret        = "change-me-in-production"
	defaultAuthStrategy      = "hmac"
	defaultAuthTokenTTL      = 24 * time.Hour
	defaultStoreTimezone     = "Europe/London"
	defaultOrdersPageSize    = 50
	defaultOrdersMaxPages    = 100
	defaultOrderPollInterval = 5 * time.Second
	defaultSnapshotTTL       = 30 * time.Second
	defaultBatchConcurrency  = 8
	defaultShutdownTimeout   = 10 * time.Second
	defaultKafkaAlertTopic   = "salesdesk.new-orders"
)

var validate = validator.New()

// Load parses configuration from a local .env file, environment variables and flags.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		StoreAPIURL:       getString(lookup, "STORE_API_URL", ""),
		StoreAPIUsername:  getString(lookup, "STORE_API_USERNAME", ""),
		StoreAPIPassword:  getString(lookup, "STORE_API_PASSWORD", ""),
		StoreTimezone:     getString(lookup, "STORE_TIMEZONE", defaultStoreTimezone),
		OrdersPageSize:    getInt(lookup, "ORDERS_PAGE_SIZE", defaultOrdersPageSize),
		OrdersMaxPages:    getInt(lookup, "ORDERS_MAX_PAGES", defaultOrdersMaxPages),
		AuthSecret:        getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		AuthStrategy:      getString(lookup, "AUTH_STRATEGY", defaultAuthStrategy),
		AuthTokenTTL:      getDuration(lookup, "AUTH_TOKEN_TTL", defaultAuthTokenTTL),
		AdminLogin:        getString(lookup, "ADMIN_LOGIN", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		OrderPollInterval: getDuration(lookup, "ORDER_POLL_INTERVAL", defaultOrderPollInterval),
		SnapshotTTL:       getDuration(lookup, "SNAPSHOT_TTL", defaultSnapshotTTL),
		BatchConcurrency:  getInt(lookup, "BATCH_CONCURRENCY", defaultBatchConcurrency),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		AllowedOrigins:    getList(lookup, "ALLOWED_ORIGINS"),
		KafkaBrokers:      getList(lookup, "KAFKA_BROKERS"),
		KafkaAlertTopic:   getString(lookup, "KAFKA_ALERT_TOPIC", defaultKafkaAlertTopic),
	}

	fs := flag.NewFlagSet("salesdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.OrderPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.StoreAPIURL, "s", cfg.StoreAPIURL, "Store API base URL")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing admin tokens")
	fs.StringVar(&cfg.AuthStrategy, "auth-strategy", cfg.AuthStrategy, "Admin token format: hmac or jwt")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between new order polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.BatchConcurrency, "batch-concurrency", cfg.BatchConcurrency, "Concurrent store API calls per batch mutation")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.OrderPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	secrets := []struct {
		key    string
		target *string
	}{
		{"AUTH_SECRET_FILE", &cfg.AuthSecret},
		{"STORE_API_PASSWORD_FILE", &cfg.StoreAPIPassword},
		{"ADMIN_PASSWORD_FILE", &cfg.AdminPassword},
	}
	for _, s := range secrets {
		if err := readSecretFile(lookup, s.key, s.target); err != nil {
			return nil, err
		}
	}

	if cfg.OrdersPageSize <= 0 {
		cfg.OrdersPageSize = defaultOrdersPageSize
	}

	if cfg.OrdersMaxPages <= 0 {
		cfg.OrdersMaxPages = defaultOrdersMaxPages
	}

	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}

	if cfg.OrderPollInterval <= 0 {
		cfg.OrderPollInterval = defaultOrderPollInterval
	}

	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = defaultSnapshotTTL
	}

	if cfg.AuthTokenTTL <= 0 {
		cfg.AuthTokenTTL = defaultAuthTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.StoreAPIURL == "" {
		return nil, fmt.Errorf("store api url must be provided")
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Location resolves StoreTimezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.StoreTimezone)
}

func readSecretFile(lookup envLookup, key string, target *string) error {
	path, ok := lookup(key)
	if !ok || path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", strings.ToLower(key), err)
	}
	*target = strings.TrimSpace(string(content))
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(lookup envLookup, key string) []string {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
