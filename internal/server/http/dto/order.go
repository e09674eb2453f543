package dto

import (
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

type OrderItemResponse struct {
	Name         string  `json:"name"`
	Size         string  `json:"size,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	SerialNumber string  `json:"serialNumber"`
}

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Type       string `json:"type,omitempty"`
}

type CustomerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OrderResponse describes a store order in admin listings.
type OrderResponse struct {
	ID              string              `json:"id"`
	State           string              `json:"state"`
	CreatedAt       time.Time           `json:"createdAt"`
	IsPaid          bool                `json:"isPaid"`
	IsDelivered     bool                `json:"isDelivered"`
	IsMovedToSales  bool                `json:"isMovedToSales"`
	TotalPrice      float64             `json:"totalPrice"`
	ItemsPrice      float64             `json:"itemsPrice"`
	ShippingPrice   float64             `json:"shippingPrice"`
	ShippingMethod  string              `json:"shippingMethod,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	ShippingAddress AddressResponse     `json:"shippingAddress"`
	Customer        CustomerResponse    `json:"customer"`
}

// BoardResponse is the fulfilment view.
type BoardResponse struct {
	New       []OrderResponse `json:"newOrders"`
	Completed []OrderResponse `json:"completedOrders"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// WatchResponse reports the new-order watcher state.
type WatchResponse struct {
	Running   bool       `json:"running"`
	NewOrders int        `json:"newOrders"`
	LastPoll  *time.Time `json:"lastPoll,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

type AlertResponse struct {
	ID       string    `json:"id"`
	Count    int       `json:"count"`
	Previous int       `json:"previous"`
	RaisedAt time.Time `json:"raisedAt"`
}

// MoveRequest lists orders to archive.
type MoveRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// BatchResponse reports how many orders a bulk mutation touched.
type BatchResponse struct {
	Count int `json:"count"`
}

func FromOrder(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, OrderItemResponse{
			Name:         it.Name,
			Size:         it.Size,
			Quantity:     it.Quantity,
			Price:        Money(it.Price),
			SerialNumber: it.Serial(),
		})
	}
	return OrderResponse{
		ID:             o.ID,
		State:          string(o.State()),
		CreatedAt:      o.CreatedAt,
		IsPaid:         o.IsPaid,
		IsDelivered:    o.IsDelivered,
		IsMovedToSales: o.IsMovedToSales,
		TotalPrice:     Money(o.TotalPrice),
		ItemsPrice:     Money(o.ItemsPrice),
		ShippingPrice:  Money(o.ShippingPrice),
		ShippingMethod: o.ShippingMethod,
		Items:          items,
		ShippingAddress: AddressResponse{
			Street:     o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
			Type:       o.ShippingAddress.Type,
		},
		Customer: CustomerResponse{
			FirstName: o.CustomerDetails.FirstName,
			LastName:  o.CustomerDetails.LastName,
			Email:     o.CustomerDetails.Email,
		},
	}
}

func FromOrders(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}

func FromWatcherStatus(s model.WatcherStatus) WatchResponse {
	resp := WatchResponse{Running: s.Running, NewOrders: s.NewOrders, LastError: s.LastError}
	if !s.LastPoll.IsZero() {
		at := s.LastPoll
		resp.LastPoll = &at
	}
	return resp
}

func FromAlert(a model.NewOrderAlert) AlertResponse {
	return AlertResponse{ID: a.ID, Count: a.Count, Previous: a.Previous, RaisedAt: a.RaisedAt}
}
