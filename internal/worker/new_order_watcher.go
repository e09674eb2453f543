package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/salesdesk/internal/adapter/storeapi"
	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/metrics"
	"github.com/polkiloo/salesdesk/internal/sales"
)

// OrderSource exposes the subset of application functionality required by the watcher.
type OrderSource interface {
	RefreshOrders(ctx context.Context) ([]model.Order, error)
	LoginStore(ctx context.Context) error
}

// AlertPlayer delivers a new-order alert.
type AlertPlayer interface {
	Play(ctx context.Context, alert model.NewOrderAlert) error
}

// AlertFactory builds an alert for a grown new-order count.
type AlertFactory func(count, previous int, at time.Time) model.NewOrderAlert

// NewOrderWatcher polls the store for orders on a fixed interval and plays a
// single alert whenever the number of new orders grows.
type NewOrderWatcher struct {
	source       OrderSource
	player       AlertPlayer
	newAlert     AlertFactory
	metrics      *metrics.Metrics
	pollInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time

	state struct {
		sync.Mutex
		running    bool
		previous   int
		lastPoll   time.Time
		lastErr    error
		needsLogin bool
	}

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNewOrderWatcher constructs the watcher.
func NewNewOrderWatcher(source OrderSource, player AlertPlayer, newAlert AlertFactory, m *metrics.Metrics, pollInterval time.Duration, logger *slog.Logger) *NewOrderWatcher {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &NewOrderWatcher{
		source:       source,
		player:       player,
		newAlert:     newAlert,
		metrics:      m,
		pollInterval: pollInterval,
		logger:       logger,
		now:          time.Now,
	}
}

// Start launches background polling. The first poll runs immediately.
func (w *NewOrderWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.setRunning(true)

	w.wg.Add(1)
	go w.run(runCtx)
}

// Stop cancels polling and waits for the in-flight poll to finish.
func (w *NewOrderWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
	w.setRunning(false)
}

// Status reports the outcome of the latest poll.
func (w *NewOrderWatcher) Status() model.WatcherStatus {
	w.state.Lock()
	defer w.state.Unlock()

	status := model.WatcherStatus{
		Running:   w.state.running,
		NewOrders: w.state.previous,
		LastPoll:  w.state.lastPoll,
	}
	if w.state.lastErr != nil {
		status.LastError = w.state.lastErr.Error()
	}
	return status
}

func (w *NewOrderWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *NewOrderWatcher) poll(ctx context.Context) {
	if w.loginRequired() {
		if err := w.source.LoginStore(ctx); err != nil {
			w.fail(ctx, "login", err)
			return
		}
		w.logger.InfoContext(ctx, "store session renewed")
		w.state.Lock()
		w.state.needsLogin = false
		w.state.Unlock()
	}

	orders, err := w.source.RefreshOrders(ctx)
	if err != nil {
		if storeapi.IsUnauthorized(err) {
			w.state.Lock()
			w.state.needsLogin = true
			w.state.Unlock()
		}
		w.fail(ctx, "error", err)
		return
	}

	count := len(sales.Split(orders).New)
	now := w.now()

	w.state.Lock()
	previous := w.state.previous
	w.state.previous = count
	w.state.lastPoll = now
	w.state.lastErr = nil
	w.state.Unlock()

	w.metrics.NewOrders.Set(float64(count))
	w.metrics.Polls.WithLabelValues("ok").Inc()

	if count > previous && count > 0 {
		alert := w.newAlert(count, previous, now)
		w.metrics.Alerts.Inc()
		if err := w.player.Play(ctx, alert); err != nil {
			w.logger.WarnContext(ctx, "play new order alert failed", slog.String("alert_id", alert.ID), slog.String("error", err.Error()))
		}
	}
}

func (w *NewOrderWatcher) fail(ctx context.Context, result string, err error) {
	w.state.Lock()
	w.state.lastErr = err
	w.state.Unlock()

	w.metrics.Polls.WithLabelValues(result).Inc()
	if ctx.Err() == nil {
		w.logger.WarnContext(ctx, "poll orders failed", slog.String("stage", result), slog.String("error", err.Error()))
	}
}

func (w *NewOrderWatcher) loginRequired() bool {
	w.state.Lock()
	defer w.state.Unlock()
	return w.state.needsLogin
}

func (w *NewOrderWatcher) setRunning(running bool) {
	w.state.Lock()
	w.state.running = running
	w.state.Unlock()
}
