package snapshot

import (
	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// Module provides the order and user snapshots.
var Module = fx.Provide(
	func(cfg *config.Config) *Orders { return New[[]model.Order](cfg.SnapshotTTL) },
	func(cfg *config.Config) *Users { return New[[]model.User](cfg.SnapshotTTL) },
)
