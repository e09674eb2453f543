package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/server/http/dto"
)

const (
	fetchSalesFailed    = "Failed to fetch sales. Please try again."
	loadDashboardFailed = "Failed to load dashboard data. Please try again."
	invalidMonth        = "Invalid month. Use YYYY-MM."
)

// SalesHandler serves sales reports, invoices and the dashboard.
type SalesHandler struct {
	facade SalesFacade
}

// NewSalesHandler constructs SalesHandler.
func NewSalesHandler(facade SalesFacade) *SalesHandler {
	return &SalesHandler{facade: facade}
}

// Report handles GET /api/admin/sales?month=.
func (h *SalesHandler) Report(c *gin.Context) {
	report, err := h.facade.SalesReport(c.Request.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidMonth) {
			respondMessage(c, http.StatusBadRequest, invalidMonth)
			return
		}
		respondError(c, err, fetchSalesFailed)
		return
	}

	months := make([]dto.MonthOption, 0, len(report.Months))
	for _, m := range report.Months {
		months = append(months, dto.FromMonth(m))
	}
	resp := dto.SalesResponse{
		Months:      months,
		Totals:      dto.FromTotals(report.Totals),
		BestSellers: dto.FromBestSellers(report.BestSellers),
		Orders:      dto.FromOrders(report.Orders),
	}
	if report.HasSelected {
		selected := dto.FromMonth(report.Selected)
		resp.Selected = &selected
	}
	c.JSON(http.StatusOK, resp)
}

// WeeklyInvoice handles GET /api/admin/sales/invoices/weekly.
func (h *SalesHandler) WeeklyInvoice(c *gin.Context) {
	inv, err := h.facade.WeeklyInvoice(c.Request.Context())
	if err != nil {
		respondError(c, err, fetchSalesFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromInvoice(*inv))
}

// MonthlyInvoice handles GET /api/admin/sales/invoices/monthly.
func (h *SalesHandler) MonthlyInvoice(c *gin.Context) {
	inv, err := h.facade.MonthlyInvoice(c.Request.Context())
	if err != nil {
		respondError(c, err, fetchSalesFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromInvoice(*inv))
}

// Dashboard handles GET /api/admin/dashboard.
func (h *SalesHandler) Dashboard(c *gin.Context) {
	dash, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, loadDashboardFailed)
		return
	}
	c.JSON(http.StatusOK, dto.FromDashboard(*dash))
}
