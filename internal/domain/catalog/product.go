package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// IsValid checks if the status is one of the known values
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return true
	}
	return false
}

// Product is a sellable item with its prices and on-hand stock
type Product struct {
	shared.BaseAggregateRoot
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Code        string          `gorm:"column:product_code;type:varchar(100);not null;uniqueIndex" json:"product_code"`
	Description string          `gorm:"type:text" json:"description"`
	ImageKey    string          `gorm:"column:image;type:varchar(512)" json:"image,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	BuyingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"buying_price"`
	StockAmount int             `gorm:"not null;default:0" json:"stock_amount"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductDetails are the editable attributes of a product
type ProductDetails struct {
	CategoryID  uuid.UUID
	Name        string
	Code        string
	Description string
	Price       decimal.Decimal
	BuyingPrice decimal.Decimal
	StockAmount int
	Status      ProductStatus
}

// NewProduct creates a new product
func NewProduct(d ProductDetails) (*Product, error) {
	if d.Status == "" {
		d.Status = ProductStatusActive
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}
	product.apply(d)
	product.AddDomainEvent(NewProductCreatedEvent(product))
	return product, nil
}

// Update replaces the product's editable attributes
func (p *Product) Update(d ProductDetails) error {
	if d.Status == "" {
		d.Status = p.Status
	}
	if err := d.validate(); err != nil {
		return err
	}
	p.apply(d)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

func (p *Product) apply(d ProductDetails) {
	p.CategoryID = d.CategoryID
	p.Name = strings.TrimSpace(d.Name)
	p.Code = strings.TrimSpace(d.Code)
	p.Description = d.Description
	p.Price = d.Price.Round(2)
	p.BuyingPrice = d.BuyingPrice.Round(2)
	p.StockAmount = d.StockAmount
	p.Status = d.Status
}

// AddStock increases on-hand stock
func (p *Product) AddStock(quantity int) error {
	if quantity < 1 {
		return shared.ErrInvalidInput.WithMessage("Stock quantity must be at least 1")
	}
	p.StockAmount += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProductStockChangedEvent(p, quantity))
	return nil
}

// RemoveStock decreases on-hand stock for a sale
func (p *Product) RemoveStock(quantity int) error {
	if quantity < 1 {
		return shared.ErrInvalidInput.WithMessage("Quantity must be at least 1")
	}
	if p.StockAmount < quantity {
		return shared.ErrInsufficientStock.WithMessage(
			fmt.Sprintf("Insufficient stock for %s: %d available, %d requested", p.Name, p.StockAmount, quantity))
	}
	p.StockAmount -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProductStockChangedEvent(p, -quantity))
	return nil
}

// SetImage stores a new image key and returns the one it replaced
func (p *Product) SetImage(key string) string {
	previous := p.ImageKey
	p.ImageKey = key
	p.UpdatedAt = time.Now()
	return previous
}

// HasImage reports whether an image is attached
func (p *Product) HasImage() bool {
	return p.ImageKey != ""
}

// IsActive returns true if the product can be sold
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// MarkDeleted records a deletion event before the row is removed
func (p *Product) MarkDeleted() {
	p.AddDomainEvent(NewProductDeletedEvent(p))
}

func (d ProductDetails) validate() error {
	if d.CategoryID == uuid.Nil {
		return shared.ErrInvalidInput.WithMessage("Category is required")
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 255 characters")
	}
	code := strings.TrimSpace(d.Code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 100 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 100 characters")
	}
	if d.Price.IsNegative() || d.BuyingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if d.StockAmount < 0 {
		return shared.ErrInvalidInput.WithMessage("Stock amount cannot be negative")
	}
	if !d.Status.IsValid() {
		return shared.ErrInvalidInput.WithMessage("Status must be one of active, inactive, discontinued")
	}
	return nil
}
