package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product mirrors a catalog entry as returned by the store admin API.
type Product struct {
	ID               string          `json:"_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	ProductCategory  string          `json:"productCategory"`
	InterestCategory string          `json:"interestCategory"`
	GenderCategory   string          `json:"genderCategory"`
	SaleCategory     string          `json:"saleCategory"`
	IsNewArrival     bool            `json:"isNewArrival"`
	IsOnSale         bool            `json:"isOnSale"`
	CountInStock     int             `json:"countInStock"`
	Size             Sizes           `json:"size"`
	OnOff            bool            `json:"onOff"`
	SerialNumber     string          `json:"serialNumber"`
	Images           []string        `json:"images"`
}

// InCategory reports whether any of the product's categories equals category.
func (p Product) InCategory(category string) bool {
	return p.ProductCategory == category ||
		p.InterestCategory == category ||
		p.GenderCategory == category ||
		p.SaleCategory == category
}

// Sizes lists the sizes a product is offered in. Older catalog entries store
// the list as a JSON-encoded string, which is decoded transparently.
type Sizes []string

func (s *Sizes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if encoded == "" {
			*s = nil
			return nil
		}
		data = []byte(encoded)
	}
	var sizes []string
	if err := json.Unmarshal(data, &sizes); err != nil {
		return fmt.Errorf("product sizes: %w", err)
	}
	*s = sizes
	return nil
}

// ProductUpdate carries the editable fields of a catalog entry. Images are
// managed by the storefront and are never changed through the dashboard.
type ProductUpdate struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	ProductCategory  string
	InterestCategory string
	GenderCategory   string
	SaleCategory     string
	IsNewArrival     bool
	IsOnSale         bool
	CountInStock     int
	Size             []string
	OnOff            bool
	SerialNumber     string

	// ExistingImages are the image paths the store keeps for the product.
	ExistingImages []string
}

// ProductFilter narrows the catalog listing.
type ProductFilter struct {
	Search   string
	Category string
	Page     int
}

// ProductPage is one page of the filtered catalog together with counters
// over the whole filtered set.
type ProductPage struct {
	Products []Product
	Total    int
	OnSale   int
	Page     int
	Pages    int
}
