// Package notify delivers new-order alerts to whoever is watching the dashboard.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofrs/uuid"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// Player delivers a new-order alert. Implementations own their resources and release them in Close.
type Player interface {
	Play(ctx context.Context, alert model.NewOrderAlert) error
	Close() error
}

// NewAlert builds an alert with a fresh id.
func NewAlert(count, previous int, at time.Time) model.NewOrderAlert {
	return model.NewOrderAlert{
		ID:       uuid.Must(uuid.NewV4()).String(),
		Count:    count,
		Previous: previous,
		RaisedAt: at,
	}
}

// LogPlayer writes alerts to the structured log.
type LogPlayer struct {
	logger *slog.Logger
}

func NewLogPlayer(logger *slog.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(ctx context.Context, alert model.NewOrderAlert) error {
	p.logger.InfoContext(ctx, "new orders arrived",
		slog.String("alert_id", alert.ID),
		slog.Int("count", alert.Count),
		slog.Int("previous", alert.Previous),
	)
	return nil
}

func (p *LogPlayer) Close() error { return nil }

// Fanout plays every alert on all of its players.
type Fanout struct {
	players []Player
}

func NewFanout(players ...Player) *Fanout {
	return &Fanout{players: players}
}

// Play delivers to every player even when some of them fail.
func (f *Fanout) Play(ctx context.Context, alert model.NewOrderAlert) error {
	var errs []error
	for _, p := range f.players {
		if err := p.Play(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) Close() error {
	var errs []error
	for _, p := range f.players {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
