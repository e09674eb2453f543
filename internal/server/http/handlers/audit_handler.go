package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/server/http/dto"
)

// AuditHandler serves the admin action log.
type AuditHandler struct {
	facade AuditFacade
}

func NewAuditHandler(facade AuditFacade) *AuditHandler {
	return &AuditHandler{facade: facade}
}

// List handles GET /api/admin/audit?action=&limit=.
func (h *AuditHandler) List(c *gin.Context) {
	filter := model.AuditFilter{Action: model.AuditAction(c.Query("action"))}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respondMessage(c, http.StatusBadRequest, "Invalid limit.")
			return
		}
		filter.Limit = limit
	}

	entries, err := h.facade.AuditLog(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch audit log. Please try again.")
		return
	}
	c.JSON(http.StatusOK, dto.FromAuditEntries(entries))
}
