package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/sales"
)

// ProductUseCase browses and edits the store catalog.
type ProductUseCase struct {
	store ProductStore
	audit *AuditUseCase
}

func NewProductUseCase(store ProductStore, audit *AuditUseCase) *ProductUseCase {
	return &ProductUseCase{store: store, audit: audit}
}

// Catalog returns one page of the catalog narrowed by filter.
func (u *ProductUseCase) Catalog(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	products, err := u.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	page := sales.ProductCatalog(products, filter)
	return &page, nil
}

// Update edits a catalog entry. When update carries no image list the
// product's current images are kept.
func (u *ProductUseCase) Update(ctx context.Context, adminID int64, id string, update model.ProductUpdate) (*model.Product, error) {
	if err := validateProductUpdate(update); err != nil {
		return nil, err
	}

	products, err := u.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	current, ok := findProduct(products, id)
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, domainErrors.ErrNotFound)
	}
	if update.ExistingImages == nil {
		update.ExistingImages = current.Images
	}

	product, err := u.store.UpdateProduct(ctx, id, update)
	u.audit.Record(ctx, adminID, model.AuditActionUpdateProduct, []string{id}, update.Name, err)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func validateProductUpdate(u model.ProductUpdate) error {
	switch {
	case strings.TrimSpace(u.Name) == "":
		return fmt.Errorf("%w: name is required", domainErrors.ErrInvalidProduct)
	case u.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrInvalidProduct)
	case u.CountInStock < 0:
		return fmt.Errorf("%w: stock must not be negative", domainErrors.ErrInvalidProduct)
	}
	return nil
}

func findProduct(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
