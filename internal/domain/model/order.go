package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownSerial replaces absent serial numbers in grouping and ordering.
const UnknownSerial = "N/A"

// OrderState describes where an order sits in the fulfillment lifecycle.
type OrderState string

const (
	OrderStateNew       OrderState = "new"
	OrderStateCompleted OrderState = "completed"
	OrderStateArchived  OrderState = "archived"
)

// Order mirrors a store order as returned by the store API.
type Order struct {
	ID              string          `json:"_id"`
	CreatedAt       time.Time       `json:"createdAt"`
	IsPaid          bool            `json:"isPaid"`
	IsDelivered     bool            `json:"isDelivered"`
	IsMovedToSales  bool            `json:"isMovedToSales"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	ShippingMethod  string          `json:"shippingMethod"`
}

// State reports the lifecycle partition the order belongs to.
func (o Order) State() OrderState {
	switch {
	case o.IsMovedToSales:
		return OrderStateArchived
	case o.IsDelivered:
		return OrderStateCompleted
	default:
		return OrderStateNew
	}
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name         string          `json:"name"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SerialNumber string          `json:"serialNumber,omitempty"`
}

// Serial returns the item serial number or UnknownSerial when absent.
func (i OrderItem) Serial() string {
	if i.SerialNumber == "" {
		return UnknownSerial
	}
	return i.SerialNumber
}

// LineTotal is unit price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Type       string `json:"type"`
}

type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
