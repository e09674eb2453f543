package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/adapter/storeapi"
	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/metrics"
	"github.com/polkiloo/salesdesk/internal/notify"
	"github.com/polkiloo/salesdesk/internal/usecase"
	"github.com/polkiloo/salesdesk/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newAdminFacade,
		newHTTPServer,
		newOrderWatcher,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Auth     *usecase.AuthUseCase
	Orders   *usecase.OrderUseCase
	Reports  *usecase.ReportUseCase
	Users    *usecase.UserUseCase
	Products *usecase.ProductUseCase
	Audit    *usecase.AuditUseCase
	Store    storeapi.Client
	Watcher  *worker.NewOrderWatcher
	Hub      *notify.Hub
	Logger   *slog.Logger
}

func newAdminFacade(p facadeParams) *AdminFacade {
	return NewAdminFacade(FacadeDeps{
		Auth:     p.Auth,
		Orders:   p.Orders,
		Reports:  p.Reports,
		Users:    p.Users,
		Products: p.Products,
		Audit:    p.Audit,
		Session:  p.Store,
		Watcher:  p.Watcher,
		Alerts:   p.Hub,
		Logger:   p.Logger,
	})
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	var handler http.Handler = p.Router
	if len(p.Config.AllowedOrigins) > 0 {
		handler = cors.Handler(cors.Options{
			AllowedOrigins:   p.Config.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding"},
			AllowCredentials: true,
			MaxAge:           300,
		})(p.Router)
	}
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: handler,
	}
}

type watcherParams struct {
	fx.In

	Orders  *usecase.OrderUseCase
	Store   storeapi.Client
	Player  notify.Player
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

func newOrderWatcher(p watcherParams) *worker.NewOrderWatcher {
	return worker.NewNewOrderWatcher(
		orderSource{orders: p.Orders, session: p.Store},
		p.Player,
		notify.NewAlert,
		p.Metrics,
		p.Config.OrderPollInterval,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Context    context.Context
	Logger     *slog.Logger
	Server     *http.Server
	Watcher    *worker.NewOrderWatcher
	Auth       *usecase.AuthUseCase
	Store      storeapi.Client
	Hub        *notify.Hub
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	// Alert streams only return once the hub closes, and Shutdown waits for them.
	p.Server.RegisterOnShutdown(func() {
		_ = p.Hub.Close()
	})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := p.Auth.EnsureAdmin(ctx, p.Config.AdminLogin, p.Config.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				p.Logger.Info("bootstrap admin created", slog.String("login", p.Config.AdminLogin))
			}

			if err := p.Store.Login(ctx); err != nil {
				p.Logger.Warn("initial store login failed", slog.String("error", err.Error()))
			}

			p.Logger.Info("starting salesdesk", slog.String("addr", p.Server.Addr))
			// The start context expires once fx finishes starting; polling
			// must outlive it.
			p.Watcher.Start(p.Context)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Watcher.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("salesdesk stopped")
			return nil
		},
	})
}
