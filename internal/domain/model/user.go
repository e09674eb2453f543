package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// User represents a store customer account as returned by the store API.
type User struct {
	ID          string         `json:"_id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Newsletter  bool           `json:"newsletter"`
	EmailOffers bool           `json:"emailOffers"`
	PhoneOffers bool           `json:"phoneOffers"`
	IsAdmin     bool           `json:"isAdmin"`
	TotalOrders int            `json:"totalOrders"`
	CreatedAt   time.Time      `json:"createdAt"`
	Cart        []CartItem     `json:"cart"`
	Wishlist    []WishlistItem `json:"wishlist"`
}

// CartItem is a product a customer left in the cart. The store sends the
// product either as an id or as the populated product document.
type CartItem struct {
	ProductID string `json:"product"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

func (c *CartItem) UnmarshalJSON(data []byte) error {
	type plain CartItem
	var raw struct {
		plain
		Product productRef `json:"product"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CartItem(raw.plain)
	c.ProductID = raw.Product.ID
	if c.Name == "" {
		c.Name = raw.Product.Name
	}
	return nil
}

type WishlistItem struct {
	ProductID string `json:"product"`
	Name      string `json:"name"`
}

func (w *WishlistItem) UnmarshalJSON(data []byte) error {
	type plain WishlistItem
	var raw struct {
		plain
		Product productRef `json:"product"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = WishlistItem(raw.plain)
	w.ProductID = raw.Product.ID
	if w.Name == "" {
		w.Name = raw.Product.Name
	}
	return nil
}

// productRef accepts a product reference as a bare id or as an object
// carrying _id.
type productRef struct {
	ID   string
	Name string
}

func (r *productRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = productRef{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("product reference: %w", err)
		}
		*r = productRef{ID: id}
		return nil
	}
	var doc struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("product reference: %w", err)
	}
	*r = productRef{ID: doc.ID, Name: doc.Name}
	return nil
}
