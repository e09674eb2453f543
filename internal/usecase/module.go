package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesdesk/internal/config"
	"github.com/polkiloo/salesdesk/internal/snapshot"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewAuditUseCase,
	newOrderUseCase,
	NewReportUseCase,
	NewUserUseCase,
	NewProductUseCase,
)

type orderParams struct {
	fx.In

	Store    OrderStore
	Snapshot *snapshot.Orders
	Audit    *AuditUseCase
	Config   *config.Config
	Logger   *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Store, p.Snapshot, p.Audit, p.Config.BatchConcurrency, p.Logger)
}
