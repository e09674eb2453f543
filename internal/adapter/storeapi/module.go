package storeapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/metrics"
)

// Module exposes the store API client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.StoreAPIURL, Options{
		Username:  p.Config.StoreAPIUsername,
		Password:  p.Config.StoreAPIPassword,
		PageSize:  p.Config.OrdersPageSize,
		MaxPages:  p.Config.OrdersMaxPages,
		Transport: p.Metrics.InstrumentTransport(nil),
	}, p.Logger)
}
