package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// ListProducts fetches the full catalog, including products switched off in the storefront.
func (c *HTTPClient) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/admin", nil, nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// UpdateProduct edits a catalog entry. The store only accepts product edits
// as multipart forms; no image parts are sent, so the store keeps exactly
// update.ExistingImages.
func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	body, contentType, err := productForm(update)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	var product model.Product
	if err := c.send(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), nil, body, contentType, &product); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &product, nil
}

func productForm(u model.ProductUpdate) (*bytes.Buffer, string, error) {
	size := u.Size
	if size == nil {
		size = []string{}
	}
	sizeJSON, err := json.Marshal(size)
	if err != nil {
		return nil, "", fmt.Errorf("encode sizes: %w", err)
	}
	images := u.ExistingImages
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, "", fmt.Errorf("encode images: %w", err)
	}

	fields := []struct{ name, value string }{
		{"name", u.Name},
		{"price", u.Price.String()},
		{"description", u.Description},
		{"productCategory", u.ProductCategory},
		{"interestCategory", u.InterestCategory},
		{"genderCategory", u.GenderCategory},
		{"saleCategory", u.SaleCategory},
		{"isNewArrival", strconv.FormatBool(u.IsNewArrival)},
		{"isOnSale", strconv.FormatBool(u.IsOnSale)},
		{"countInStock", strconv.Itoa(u.CountInStock)},
		{"size", string(sizeJSON)},
		{"onOff", strconv.FormatBool(u.OnOff)},
		{"serialNumber", u.SerialNumber},
		{"existingImages", string(imagesJSON)},
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
