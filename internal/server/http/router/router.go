package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/metrics"
	"github.com/polkiloo/salesdesk/internal/server/http/handlers"
	"github.com/polkiloo/salesdesk/internal/server/http/middleware"
)

const (
	adminPrefix    = "/api/admin"
	alertsPath     = adminPrefix + "/orders/alerts"
	healthzTimeout = 2 * time.Second
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Params lists router dependencies resolved by fx.
type Params struct {
	fx.In

	Facade   handlers.AdminFacade
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
	Health   HealthChecker
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{alertsPath}),
		gzip.WithDecompressFn(gzip.DefaultDecompressHandle),
	))

	engine.GET("/metrics", gin.WrapH(metrics.Handler(p.Registry)))
	engine.GET("/healthz", healthz(p.Health))

	authHandler := handlers.NewAuthHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	salesHandler := handlers.NewSalesHandler(p.Facade)
	userHandler := handlers.NewUserHandler(p.Facade)
	productHandler := handlers.NewProductHandler(p.Facade)
	auditHandler := handlers.NewAuditHandler(p.Facade)

	admin := engine.Group(adminPrefix)
	admin.POST("/login", authHandler.Login)

	authed := admin.Group("")
	authed.Use(middleware.AuthRequired(p.Facade))
	authed.GET("/dashboard", salesHandler.Dashboard)

	authed.GET("/orders", orderHandler.Board)
	authed.GET("/orders/watch", orderHandler.Watch)
	authed.GET("/orders/alerts", orderHandler.Alerts)
	authed.DELETE("/orders/:id", orderHandler.Cancel)
	authed.PUT("/orders/:id/delivered", orderHandler.MarkDelivered)
	authed.POST("/orders/deliver-all", orderHandler.DeliverAll)
	authed.POST("/orders/move-to-sales", orderHandler.MoveToSales)
	authed.POST("/orders/move-to-sales/completed", orderHandler.MoveAllCompleted)

	authed.GET("/sales", salesHandler.Report)
	authed.GET("/sales/invoices/weekly", salesHandler.WeeklyInvoice)
	authed.GET("/sales/invoices/monthly", salesHandler.MonthlyInvoice)

	authed.GET("/users", userHandler.List)
	authed.GET("/users/engagement", userHandler.Engagement)
	authed.DELETE("/users/:id", userHandler.Delete)

	authed.GET("/products", productHandler.List)
	authed.PUT("/products/:id", productHandler.Update)

	authed.GET("/audit", auditHandler.List)

	return engine
}

func healthz(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthzTimeout)
		defer cancel()
		if err := checker.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
