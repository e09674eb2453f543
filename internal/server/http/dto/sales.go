package dto

import (
	"encoding/json"
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/sales"
)

// MonthOption is a selectable report month.
type MonthOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type TotalsResponse struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

type BestSellerResponse struct {
	SerialNumber string  `json:"serialNumber"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Revenue      float64 `json:"revenue"`
}

// SalesResponse is the monthly sales report.
type SalesResponse struct {
	Months      []MonthOption        `json:"months"`
	Selected    *MonthOption         `json:"selected,omitempty"`
	Totals      TotalsResponse       `json:"totals"`
	BestSellers []BestSellerResponse `json:"bestSellers"`
	Orders      []OrderResponse      `json:"orders"`
}

type InvoiceLineResponse struct {
	SerialNumber string  `json:"serialNumber"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	NetPrice     float64 `json:"netPrice"`
}

type InvoiceResponse struct {
	From            time.Time             `json:"from"`
	To              time.Time             `json:"to"`
	Lines           []InvoiceLineResponse `json:"lines"`
	TotalNetPrice   float64               `json:"totalNetPrice"`
	TotalGrossPrice float64               `json:"totalGrossPrice"`
	TotalStripeFees *float64              `json:"totalStripeFees,omitempty"`
	OrderCount      int                   `json:"orderCount"`
}

type DailySalesResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DashboardResponse is the admin landing page summary.
type DashboardResponse struct {
	TotalUsers   int                  `json:"totalUsers"`
	TotalOrders  int                  `json:"totalOrders"`
	NewUsers     int                  `json:"newUsers"`
	TotalSales   float64              `json:"totalSales"`
	DailySales   []DailySalesResponse `json:"dailySales"`
	RecentOrders []OrderResponse      `json:"recentOrders"`
	RecentUsers  []UserResponse       `json:"recentUsers"`
	LowStock     []json.RawMessage    `json:"lowStock"`
}

func FromMonth(m model.Month) MonthOption {
	return MonthOption{Key: sales.MonthKey(m), Label: sales.MonthLabel(m)}
}

func FromTotals(t model.SalesTotals) TotalsResponse {
	return TotalsResponse{TotalSales: Money(t.TotalSales), TotalOrders: t.TotalOrders}
}

func FromBestSellers(items []model.BestSeller) []BestSellerResponse {
	result := make([]BestSellerResponse, 0, len(items))
	for _, b := range items {
		result = append(result, BestSellerResponse{
			SerialNumber: b.SerialNumber,
			Name:         b.Name,
			Quantity:     b.Quantity,
			Revenue:      Money(b.Revenue),
		})
	}
	return result
}

func FromInvoice(inv model.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			SerialNumber: l.SerialNumber,
			Name:         l.Name,
			Quantity:     l.Quantity,
			NetPrice:     Money(l.NetPrice),
		})
	}
	resp := InvoiceResponse{
		From:            inv.From,
		To:              inv.To,
		Lines:           lines,
		TotalNetPrice:   Money(inv.TotalNetPrice),
		TotalGrossPrice: Money(inv.TotalGrossPrice),
		OrderCount:      inv.OrderCount,
	}
	if inv.TotalStripeFees != nil {
		fees := Money(*inv.TotalStripeFees)
		resp.TotalStripeFees = &fees
	}
	return resp
}

func FromDashboard(d model.Dashboard) DashboardResponse {
	daily := make([]DailySalesResponse, 0, len(d.DailySales))
	for _, s := range d.DailySales {
		daily = append(daily, DailySalesResponse{Date: s.Date.Format(time.DateOnly), Amount: Money(s.Amount)})
	}
	lowStock := d.LowStock
	if lowStock == nil {
		lowStock = []json.RawMessage{}
	}
	return DashboardResponse{
		TotalUsers:   d.Metrics.TotalUsers,
		TotalOrders:  d.Metrics.TotalOrders,
		NewUsers:     d.Metrics.NewUsers,
		TotalSales:   Money(d.TotalSales),
		DailySales:   daily,
		RecentOrders: FromOrders(d.RecentOrders),
		RecentUsers:  FromUsers(d.RecentUsers),
		LowStock:     lowStock,
	}
}
