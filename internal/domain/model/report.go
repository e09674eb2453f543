package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Month identifies a calendar month in the store's local time.
type Month struct {
	Year  int
	Month time.Month
}

// BestSeller is an aggregated line of the best-seller ranking.
type BestSeller struct {
	SerialNumber string
	Name         string
	Quantity     int
	Revenue      decimal.Decimal
}

// InvoiceLine aggregates items sharing serial number and name within a window.
type InvoiceLine struct {
	SerialNumber string
	Name         string
	Quantity     int
	NetPrice     decimal.Decimal
}

// Invoice is the rollup of archived orders over a time window.
type Invoice struct {
	From            time.Time
	To              time.Time
	Lines           []InvoiceLine
	TotalNetPrice   decimal.Decimal
	TotalGrossPrice decimal.Decimal
	// TotalStripeFees is set for weekly invoices only.
	TotalStripeFees *decimal.Decimal
	OrderCount      int
}

// SalesTotals summarises a month-filtered order set.
type SalesTotals struct {
	TotalSales  decimal.Decimal
	TotalOrders int
}

// CartProductStat ranks products by how often they sit in user carts.
type CartProductStat struct {
	ProductID     string
	Name          string
	TimesAdded    int
	TotalQuantity int
}

// WishlistProductStat ranks products by how often they are wishlisted.
type WishlistProductStat struct {
	ProductID  string
	Name       string
	TimesAdded int
}

// DailySales is the paid revenue of a single local calendar day.
type DailySales struct {
	Date   time.Time
	Amount decimal.Decimal
}

// StoreMetrics are the counters reported by the store API.
type StoreMetrics struct {
	TotalUsers  int `json:"totalUsers"`
	TotalOrders int `json:"totalOrders"`
	NewUsers    int `json:"newUsers"`
}

// Dashboard combines the store counters with locally computed sales figures.
type Dashboard struct {
	Metrics      StoreMetrics
	TotalSales   decimal.Decimal
	DailySales   []DailySales
	RecentOrders []Order
	RecentUsers  []User
	LowStock     []json.RawMessage
}
