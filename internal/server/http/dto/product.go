package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	ProductCategory  string   `json:"productCategory"`
	InterestCategory string   `json:"interestCategory"`
	GenderCategory   string   `json:"genderCategory"`
	SaleCategory     string   `json:"saleCategory"`
	IsNewArrival     bool     `json:"isNewArrival"`
	IsOnSale         bool     `json:"isOnSale"`
	CountInStock     int      `json:"countInStock"`
	Size             []string `json:"size"`
	OnOff            bool     `json:"onOff"`
	SerialNumber     string   `json:"serialNumber"`
	Images           []string `json:"images"`
}

// ProductPageResponse is one catalog page with counters over the filtered set.
type ProductPageResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	OnSale   int               `json:"onSale"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

// ProductUpdateRequest carries the editable product fields. Images cannot be
// uploaded here; ExistingImages, when present, replaces the kept image list.
type ProductUpdateRequest struct {
	Name             string          `json:"name" binding:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	ProductCategory  string          `json:"productCategory"`
	InterestCategory string          `json:"interestCategory"`
	GenderCategory   string          `json:"genderCategory"`
	SaleCategory     string          `json:"saleCategory"`
	IsNewArrival     bool            `json:"isNewArrival"`
	IsOnSale         bool            `json:"isOnSale"`
	CountInStock     int             `json:"countInStock" binding:"gte=0"`
	Size             []string        `json:"size"`
	OnOff            bool            `json:"onOff"`
	SerialNumber     string          `json:"serialNumber"`
	ExistingImages   *[]string       `json:"existingImages"`
}

func (r ProductUpdateRequest) ToModel() model.ProductUpdate {
	update := model.ProductUpdate{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		ProductCategory:  r.ProductCategory,
		InterestCategory: r.InterestCategory,
		GenderCategory:   r.GenderCategory,
		SaleCategory:     r.SaleCategory,
		IsNewArrival:     r.IsNewArrival,
		IsOnSale:         r.IsOnSale,
		CountInStock:     r.CountInStock,
		Size:             r.Size,
		OnOff:            r.OnOff,
		SerialNumber:     r.SerialNumber,
	}
	if r.ExistingImages != nil {
		update.ExistingImages = append([]string{}, *r.ExistingImages...)
	}
	return update
}

func FromProduct(p model.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            Money(p.Price),
		ProductCategory:  p.ProductCategory,
		InterestCategory: p.InterestCategory,
		GenderCategory:   p.GenderCategory,
		SaleCategory:     p.SaleCategory,
		IsNewArrival:     p.IsNewArrival,
		IsOnSale:         p.IsOnSale,
		CountInStock:     p.CountInStock,
		Size:             nonNil(p.Size),
		OnOff:            p.OnOff,
		SerialNumber:     p.SerialNumber,
		Images:           nonNil(p.Images),
	}
}

func FromProductPage(page *model.ProductPage) ProductPageResponse {
	resp := ProductPageResponse{
		Products: make([]ProductResponse, 0, len(page.Products)),
		Total:    page.Total,
		OnSale:   page.OnSale,
		Page:     page.Page,
		Pages:    page.Pages,
	}
	for _, p := range page.Products {
		resp.Products = append(resp.Products, FromProduct(p))
	}
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
