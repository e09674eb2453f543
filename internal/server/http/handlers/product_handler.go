package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/server/http/dto"
)

const (
	fetchProductsFailed = "Failed to fetch products. Please log in again."
	updateProductFailed = "Failed to update product. Please try again."
	invalidPage         = "Invalid page."
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
}

func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/admin/products?search=&category=&page=.
func (h *ProductHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     1,
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			respondMessage(c, http.StatusBadRequest, invalidPage)
			return
		}
		filter.Page = page
	}

	page, err := h.facade.ProductCatalog(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, fetchProductsFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromProductPage(page))
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), CurrentAdminID(c), c.Param("id"), req.ToModel())
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidProduct) {
			_ = c.Error(err)
			respondMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, err, updateProductFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}
