package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/adapter/storeapi"
	"github.com/polkiloo/salesdesk/internal/app"
	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/logger"
	"github.com/polkiloo/salesdesk/internal/metrics"
	"github.com/polkiloo/salesdesk/internal/notify"
	"github.com/polkiloo/salesdesk/internal/pkg/auth"
	"github.com/polkiloo/salesdesk/internal/server/http/handlers"
	"github.com/polkiloo/salesdesk/internal/server/http/router"
	"github.com/polkiloo/salesdesk/internal/snapshot"
	"github.com/polkiloo/salesdesk/internal/storage/postgres"
	"github.com/polkiloo/salesdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		storeapi.Module,
		snapshot.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(
			func(c storeapi.Client) usecase.OrderStore { return c },
			func(c storeapi.Client) usecase.ReportStore { return c },
			func(c storeapi.Client) usecase.UserStore { return c },
			func(c storeapi.Client) usecase.ProductStore { return c },
			func(f *app.AdminFacade) handlers.AdminFacade { return f },
			func(s *postgres.Storage) router.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
