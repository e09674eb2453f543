package sales

import (
	"strings"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// ProductsPerPage is the catalog page size.
const ProductsPerPage = 10

// FilterProducts keeps products whose name contains search, ignoring case,
// and that carry category as any of their categories. Empty arguments match
// everything. Catalog order is preserved.
func FilterProducts(products []model.Product, search, category string) []model.Product {
	needle := strings.ToLower(search)
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != "" && !p.InCategory(category) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// CountOnSale counts products flagged as on sale.
func CountOnSale(products []model.Product) int {
	n := 0
	for _, p := range products {
		if p.IsOnSale {
			n++
		}
	}
	return n
}

// ProductCatalog filters products and cuts the requested page. Totals cover
// the whole filtered set. Pages before the first are treated as the first;
// pages past the last come back empty.
func ProductCatalog(products []model.Product, filter model.ProductFilter) model.ProductPage {
	filtered := FilterProducts(products, filter.Search, filter.Category)
	page := max(filter.Page, 1)

	from := min((page-1)*ProductsPerPage, len(filtered))
	to := min(from+ProductsPerPage, len(filtered))

	return model.ProductPage{
		Products: filtered[from:to],
		Total:    len(filtered),
		OnSale:   CountOnSale(filtered),
		Page:     page,
		Pages:    (len(filtered) + ProductsPerPage - 1) / ProductsPerPage,
	}
}
