package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/server/http/dto"
)

const (
	alertEvent = "new-order"

	fetchOrdersFailed   = "Failed to fetch orders. Please try again."
	cancelOrderFailed   = "Failed to cancel order. Please try again."
	processOrdersFailed = "Failed to process orders. Please try again."
	moveOrdersFailed    = "Failed to move orders. Please try again."

	noOrdersSelected  = "Please select at least one order to move."
	noCompletedOrders = "No completed orders to move."
	selectedNotMoved  = "No orders were moved. Ensure selected orders are delivered."
	completedNotMoved = "No orders were moved. Ensure completed orders are delivered."
)

// OrderHandler manages the fulfilment endpoints.
type OrderHandler struct {
	facade FulfilmentFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade FulfilmentFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Board handles GET /api/admin/orders.
func (h *OrderHandler) Board(c *gin.Context) {
	board, err := h.facade.OrderBoard(c.Request.Context())
	if err != nil {
		respondError(c, err, fetchOrdersFailed)
		return
	}
	c.JSON(http.StatusOK, dto.BoardResponse{
		New:       dto.FromOrders(board.New),
		Completed: dto.FromOrders(board.Completed),
		FetchedAt: board.FetchedAt,
	})
}

// Watch handles GET /api/admin/orders/watch.
func (h *OrderHandler) Watch(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromWatcherStatus(h.facade.WatcherStatus()))
}

// Alerts handles GET /api/admin/orders/alerts as a server-sent event stream.
func (h *OrderHandler) Alerts(c *gin.Context) {
	alerts, unsubscribe := h.facade.SubscribeAlerts()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-alerts:
			if !ok {
				return
			}
			c.SSEvent(alertEvent, dto.FromAlert(alert))
			c.Writer.Flush()
		}
	}
}

// Cancel handles DELETE /api/admin/orders/:id.
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelOrder(c.Request.Context(), CurrentAdminID(c), c.Param("id")); err != nil {
		respondError(c, err, cancelOrderFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkDelivered handles PUT /api/admin/orders/:id/delivered.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	if err := h.facade.MarkDelivered(c.Request.Context(), CurrentAdminID(c), c.Param("id")); err != nil {
		respondError(c, err, processOrdersFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeliverAll handles POST /api/admin/orders/deliver-all.
func (h *OrderHandler) DeliverAll(c *gin.Context) {
	delivered, err := h.facade.DeliverAllNew(c.Request.Context(), CurrentAdminID(c))
	if err != nil {
		respondError(c, err, processOrdersFailed)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResponse{Count: delivered})
}

// MoveToSales handles POST /api/admin/orders/move-to-sales.
func (h *OrderHandler) MoveToSales(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	moved, err := h.facade.MoveToSales(c.Request.Context(), CurrentAdminID(c), req.OrderIDs)
	if err != nil {
		h.respondMoveError(c, err, selectedNotMoved)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResponse{Count: moved})
}

// MoveAllCompleted handles POST /api/admin/orders/move-to-sales/completed.
func (h *OrderHandler) MoveAllCompleted(c *gin.Context) {
	moved, err := h.facade.MoveAllCompleted(c.Request.Context(), CurrentAdminID(c))
	if err != nil {
		h.respondMoveError(c, err, completedNotMoved)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResponse{Count: moved})
}

func (h *OrderHandler) respondMoveError(c *gin.Context, err error, notMoved string) {
	switch {
	case errors.Is(err, domainErrors.ErrNoOrdersSelected):
		respondMessage(c, http.StatusBadRequest, noOrdersSelected)
	case errors.Is(err, domainErrors.ErrNothingToMove):
		respondMessage(c, http.StatusBadRequest, noCompletedOrders)
	case errors.Is(err, domainErrors.ErrNothingMoved):
		respondMessage(c, http.StatusConflict, notMoved)
	default:
		respondError(c, err, moveOrdersFailed)
	}
}
