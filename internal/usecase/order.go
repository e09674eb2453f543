package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/sales"
	"github.com/polkiloo/salesdesk/internal/snapshot"
)

const defaultBatchConcurrency = 8

// OrderBoard is the fulfilment view: new orders in packing order and
// delivered orders waiting to be moved to sales.
type OrderBoard struct {
	New       []model.Order
	Completed []model.Order
	FetchedAt time.Time
}

// OrderUseCase encapsulates order fulfilment against the store API.
type OrderUseCase struct {
	store       OrderStore
	snapshot    *snapshot.Orders
	audit       *AuditUseCase
	concurrency int
	logger      *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase. concurrency bounds the number of
// in-flight requests of a batch delivery.
func NewOrderUseCase(store OrderStore, snap *snapshot.Orders, audit *AuditUseCase, concurrency int, logger *slog.Logger) *OrderUseCase {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &OrderUseCase{
		store:       store,
		snapshot:    snap,
		audit:       audit,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Board returns the fulfilment view built from the current snapshot.
func (u *OrderUseCase) Board(ctx context.Context) (*OrderBoard, error) {
	orders, at, err := cachedOrders(ctx, u.store, u.snapshot)
	if err != nil {
		return nil, err
	}
	part := sales.Split(orders)
	return &OrderBoard{
		New:       sales.SortNewOrders(part.New),
		Completed: part.Completed,
		FetchedAt: at,
	}, nil
}

// Refresh fetches the order list bypassing the snapshot.
func (u *OrderUseCase) Refresh(ctx context.Context) ([]model.Order, error) {
	orders, _, err := refreshOrders(ctx, u.store, u.snapshot)
	return orders, err
}

// Cancel cancels a single order.
func (u *OrderUseCase) Cancel(ctx context.Context, adminID int64, id string) error {
	err := u.store.CancelOrder(ctx, id)
	u.snapshot.Invalidate()
	u.audit.Record(ctx, adminID, model.AuditActionCancelOrder, []string{id}, "", err)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	return nil
}

// MarkDelivered flags a single order as delivered.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, adminID int64, id string) error {
	err := u.store.MarkDelivered(ctx, id)
	u.snapshot.Invalidate()
	u.audit.Record(ctx, adminID, model.AuditActionMarkDelivered, []string{id}, "", err)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// DeliverAllNew marks every new order delivered, one request per order.
// Requests run concurrently in no particular order and every order is
// attempted even when some fail. Successful deliveries are not rolled back.
// It returns how many orders were delivered and the first failure.
func (u *OrderUseCase) DeliverAllNew(ctx context.Context, adminID int64) (int, error) {
	orders, err := u.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	ids := sales.IDs(sales.Split(orders).New)
	if len(ids) == 0 {
		return 0, nil
	}

	var (
		delivered atomic.Int64
		g         errgroup.Group
	)
	g.SetLimit(u.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			if err := u.store.MarkDelivered(ctx, id); err != nil {
				u.logger.WarnContext(ctx, "deliver order failed", slog.String("order", id), slog.String("error", err.Error()))
				return fmt.Errorf("mark %s delivered: %w", id, err)
			}
			delivered.Add(1)
			return nil
		})
	}
	err = g.Wait()
	u.snapshot.Invalidate()

	count := int(delivered.Load())
	u.audit.Record(ctx, adminID, model.AuditActionDeliverAll, ids, fmt.Sprintf("delivered %d of %d", count, len(ids)), err)
	return count, err
}

// MoveToSales archives the selected orders and returns how many the store moved.
func (u *OrderUseCase) MoveToSales(ctx context.Context, adminID int64, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNoOrdersSelected
	}
	return u.move(ctx, adminID, ids)
}

// MoveAllCompleted archives every delivered order still on the board.
func (u *OrderUseCase) MoveAllCompleted(ctx context.Context, adminID int64) (int, error) {
	orders, err := u.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	ids := sales.IDs(sales.Split(orders).Completed)
	if len(ids) == 0 {
		return 0, domainErrors.ErrNothingToMove
	}
	return u.move(ctx, adminID, ids)
}

func (u *OrderUseCase) move(ctx context.Context, adminID int64, ids []string) (int, error) {
	modified, err := u.store.MoveToSales(ctx, ids)
	u.snapshot.Invalidate()
	u.audit.Record(ctx, adminID, model.AuditActionMoveToSales, ids, fmt.Sprintf("moved %d of %d", modified, len(ids)), err)
	if err != nil {
		return 0, fmt.Errorf("move to sales: %w", err)
	}
	if modified == 0 {
		return 0, domainErrors.ErrNothingMoved
	}
	return modified, nil
}
