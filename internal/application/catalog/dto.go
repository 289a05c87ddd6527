package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateCategoryRequest represents a request to rename a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListFilter represents filter options for category list
type CategoryListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
}

// ProductRequest carries the editable fields of a product. Create and
// update both replace every field, matching the product form.
type ProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	Name        string          `json:"product_name" binding:"required,max=255"`
	Code        string          `json:"product_code" binding:"required,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	StockAmount int             `json:"stock_amount" binding:"min=0"`
	Status      string          `json:"status" binding:"omitempty,oneof=active inactive discontinued"`
}

// AddStockRequest represents a stock top-up
type AddStockRequest struct {
	Stock int `json:"stock" binding:"required,min=1"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"product_name"`
	Code        string          `json:"product_code"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	Margin      decimal.Decimal `json:"margin"`
	StockAmount int             `json:"stock_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"-"` // parsed from the category_id query parameter
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	InStock    *bool      `form:"in_stock"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy     string     `form:"sort_by"`
	SortDesc   bool       `form:"sort_desc"`
}

// ImageURLResponse is a time-limited link to a product image
type ImageURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Image:       p.ImageKey,
		Price:       p.Price,
		BuyingPrice: p.BuyingPrice,
		Margin:      p.Price.Sub(p.BuyingPrice),
		StockAmount: p.StockAmount,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

func (r ProductRequest) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Price:       r.Price,
		BuyingPrice: r.BuyingPrice,
		StockAmount: r.StockAmount,
		Status:      catalog.ProductStatus(r.Status),
	}
}

func sortFilter(sortBy string, desc bool, defaultField, defaultDir string) (string, string) {
	if sortBy == "" {
		return defaultField, defaultDir
	}
	if desc {
		return sortBy, "desc"
	}
	return sortBy, "asc"
}
