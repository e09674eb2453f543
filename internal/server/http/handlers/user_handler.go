package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/salesdesk/internal/server/http/dto"
)

const (
	fetchUsersFailed = "Failed to fetch users. Please try again."
	deleteUserFailed = "Failed to delete user."
)

// UserHandler manages store customers.
type UserHandler struct {
	facade UserFacade
}

func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		respondError(c, err, fetchUsersFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsers(users))
}

// Delete handles DELETE /api/admin/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteUser(c.Request.Context(), CurrentAdminID(c), c.Param("id")); err != nil {
		respondError(c, err, deleteUserFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// Engagement handles GET /api/admin/users/engagement.
func (h *UserHandler) Engagement(c *gin.Context) {
	eng, err := h.facade.Engagement(c.Request.Context())
	if err != nil {
		respondError(c, err, fetchUsersFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromEngagement(eng.Cart, eng.Wishlist))
}
