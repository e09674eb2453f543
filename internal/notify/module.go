package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/config"
)

// Module provides the alert hub and the composed notification player.
var Module = fx.Options(
	fx.Provide(NewHub),
	fx.Provide(newPlayer),
	fx.Invoke(registerLifecycle),
)

type playerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

func newPlayer(p playerParams) Player {
	players := []Player{NewLogPlayer(p.Logger), p.Hub}
	if len(p.Config.KafkaBrokers) > 0 {
		players = append(players, NewKafkaPlayer(p.Config.KafkaBrokers, p.Config.KafkaAlertTopic))
	}
	return NewFanout(players...)
}

func registerLifecycle(lc fx.Lifecycle, player Player) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return player.Close()
		},
	})
}
