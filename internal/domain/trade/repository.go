package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID loads an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Create inserts the order together with its items
	Create(ctx context.Context, order *Order) error
	FindByCustomer(ctx context.Context, customerNumber int) ([]Order, error)
	CustomerDue(ctx context.Context, customerNumber int) (decimal.Decimal, error)
}

// PurchaseView is a purchase joined with product and supplier names
type PurchaseView struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	Quantity          int             `json:"purchase_quantity"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaymentBillAmount decimal.Decimal `json:"payment_bill_amount"`
	DueBillAmount     decimal.Decimal `json:"due_bill_amount"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PurchaseRepository defines the interface for purchase persistence
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	Create(ctx context.Context, purchase *Purchase) error
	// List returns purchases with product and supplier names
	List(ctx context.Context, filter shared.Filter) ([]PurchaseView, int64, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]PurchaseView, error)
}
