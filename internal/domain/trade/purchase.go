package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var minPurchasePrice = decimal.New(1, -2)

// Purchase is a stock delivery bought from a supplier; its unpaid part is
// the supplier's debt record.
type Purchase struct {
	shared.BaseAggregateRoot
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	SupplierID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Quantity          int             `gorm:"column:purchase_quantity;not null" json:"purchase_quantity"`
	PurchasePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentBillAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"payment_bill_amount"`
	DueBillAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"due_bill_amount"`
	PurchaseDate      time.Time       `gorm:"type:date;not null" json:"purchase_date"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseDetails are the inputs of a new purchase
type PurchaseDetails struct {
	ProductID     uuid.UUID
	SupplierID    uuid.UUID
	Quantity      int
	PurchasePrice decimal.Decimal
	Payment       decimal.Decimal
	PurchaseDate  time.Time
}

// NewPurchase computes the bill total and the part still due
func NewPurchase(d PurchaseDetails) (*Purchase, error) {
	if d.ProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if d.SupplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if d.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase quantity must be at least 1")
	}
	if d.PurchasePrice.LessThan(minPurchasePrice) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price must be at least 0.01")
	}
	if d.Payment.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Payment cannot be negative")
	}
	if d.PurchaseDate.IsZero() {
		return nil, shared.ErrInvalidInput.WithMessage("Purchase date is required")
	}

	price := d.PurchasePrice.Round(2)
	total := price.Mul(decimal.NewFromInt(int64(d.Quantity))).Round(2)
	payment := d.Payment.Round(2)
	if payment.GreaterThan(total) {
		return nil, shared.NewDomainError("PAYMENT_EXCEEDS_TOTAL", "Payment cannot exceed the purchase total")
	}

	y, m, day := d.PurchaseDate.Date()
	p := &Purchase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         d.ProductID,
		SupplierID:        d.SupplierID,
		Quantity:          d.Quantity,
		PurchasePrice:     price,
		TotalAmount:       total,
		PaymentBillAmount: payment,
		DueBillAmount:     total.Sub(payment),
		PurchaseDate:      time.Date(y, m, day, 0, 0, 0, 0, time.UTC),
	}
	p.AddDomainEvent(NewPurchaseRecordedEvent(p))
	return p, nil
}
