package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

const subscriberBuffer = 8

// Hub broadcasts alerts to live dashboard subscribers.
// Slow subscribers miss alerts instead of blocking the watcher.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan model.NewOrderAlert]struct{}
	closed bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[chan model.NewOrderAlert]struct{}),
		logger: logger,
	}
}

// Subscribe registers a listener. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan model.NewOrderAlert, func()) {
	ch := make(chan model.NewOrderAlert, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
}

// Subscribers reports the number of live listeners.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) Play(ctx context.Context, alert model.NewOrderAlert) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- alert:
		default:
			h.logger.WarnContext(ctx, "alert subscriber is lagging, dropping alert", slog.String("alert_id", alert.ID))
		}
	}
	return nil
}

func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
		delete(h.subs, ch)
	}
	return nil
}
