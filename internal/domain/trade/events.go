package trade

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeOrder    = "Order"
	AggregateTypePurchase = "Purchase"
)

// Event type constants
const (
	EventTypeOrderPlaced      = "OrderPlaced"
	EventTypePurchaseRecorded = "PurchaseRecorded"
)

// OrderPlacedEvent is published after an order is stored
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID       `json:"order_id"`
	CustomerNumber int             `json:"customer_number"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DueAmount      decimal.Decimal `json:"due_amount"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		CustomerNumber:  o.CustomerNumber,
		TotalPrice:      o.TotalPrice,
		DueAmount:       o.DueAmount,
	}
}

// PurchaseRecordedEvent is published after a purchase is stored
type PurchaseRecordedEvent struct {
	shared.BaseDomainEvent
	PurchaseID uuid.UUID       `json:"purchase_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	DueAmount  decimal.Decimal `json:"due_amount"`
}

// NewPurchaseRecordedEvent creates a new PurchaseRecordedEvent
func NewPurchaseRecordedEvent(p *Purchase) *PurchaseRecordedEvent {
	return &PurchaseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseRecorded, AggregateTypePurchase, p.ID),
		PurchaseID:      p.ID,
		SupplierID:      p.SupplierID,
		ProductID:       p.ProductID,
		Quantity:        p.Quantity,
		DueAmount:       p.DueBillAmount,
	}
}
