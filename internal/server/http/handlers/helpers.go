package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/server/http/dto"
	"github.com/polkiloo/salesdesk/internal/server/http/middleware"
)

const (
	loginRedirect      = "/login"
	sessionExpiredText = "Store session expired. Please log in again."
)

// CurrentAdminID extracts authenticated operator identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// respondError answers a failed store call. Rejected store credentials send
// the operator back to the login page; anything else gets message.
func respondError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: sessionExpiredText, Redirect: loginRedirect})
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Not found.")
	default:
		respondMessage(c, http.StatusInternalServerError, message)
	}
}
