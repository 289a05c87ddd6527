package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderItem is a sold line with a snapshot of the product at sale time
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid" json:"category_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductCode string          `gorm:"type:varchar(100)" json:"product_code"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	BuyingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"buying_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is quantity times unit price
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineCost is quantity times unit buying price
func (i OrderItem) LineCost() decimal.Decimal {
	return i.BuyingPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerInfo identifies the buyer of an order
type CustomerInfo struct {
	Number  int
	Name    string
	Phone   string
	Address string
}

// OrderLine is a requested line of a new order
type OrderLine struct {
	ProductID   uuid.UUID
	CategoryID  uuid.UUID
	ProductName string
	ProductCode string
	Quantity    int
	Price       decimal.Decimal
	BuyingPrice decimal.Decimal
}

// Order is a customer sale. It is also the customer's debt record:
// DueAmount is what remains unpaid and only settlements reduce it.
type Order struct {
	shared.BaseAggregateRoot
	CustomerName     string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone    string          `gorm:"type:varchar(50)" json:"customer_phone"`
	CustomerAddress  string          `gorm:"type:text" json:"customer_address"`
	CustomerNumber   int             `gorm:"not null;index" json:"customer_number"`
	TotalBuyingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_buying_price"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_price"`
	TotalQuantity    int             `gorm:"not null;default:0" json:"total_quantity"`
	PaidAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	DueAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"due_amount"`
	ExtraAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"extra_amount"`
	Items            []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder prices the lines and splits the payment into paid, due and extra.
// A payment above the order total is kept as ExtraAmount so PaidAmount never
// exceeds TotalPrice.
func NewOrder(customer CustomerInfo, lines []OrderLine, paid decimal.Decimal) (*Order, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Customer name is required")
	}
	if customer.Number < 1 {
		return nil, shared.ErrInvalidInput.WithMessage("Customer number must be positive")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one product")
	}
	if paid.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Paid amount cannot be negative")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      strings.TrimSpace(customer.Name),
		CustomerPhone:     strings.TrimSpace(customer.Phone),
		CustomerAddress:   customer.Address,
		CustomerNumber:    customer.Number,
		Items:             make([]OrderItem, 0, len(lines)),
	}

	totalPrice := decimal.Zero
	totalCost := decimal.Zero
	quantity := 0
	for _, line := range lines {
		item, err := order.newItem(line)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
		totalPrice = totalPrice.Add(item.LineTotal())
		totalCost = totalCost.Add(item.LineCost())
		quantity += item.Quantity
	}

	paid = paid.Round(2)
	order.TotalPrice = totalPrice.Round(2)
	order.TotalBuyingPrice = totalCost.Round(2)
	order.TotalQuantity = quantity
	order.PaidAmount = decimal.Min(paid, order.TotalPrice)
	order.ExtraAmount = decimal.Max(paid.Sub(order.TotalPrice), decimal.Zero)
	order.DueAmount = order.TotalPrice.Sub(order.PaidAmount)

	order.AddDomainEvent(NewOrderPlacedEvent(order))
	return order, nil
}

func (o *Order) newItem(line OrderLine) (OrderItem, error) {
	if line.ProductID == uuid.Nil {
		return OrderItem{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if line.Quantity < 1 {
		return OrderItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if line.Price.IsNegative() || line.BuyingPrice.IsNegative() {
		return OrderItem{}, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	productID := line.ProductID
	return OrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   &productID,
		CategoryID:  line.CategoryID,
		ProductName: line.ProductName,
		ProductCode: line.ProductCode,
		Quantity:    line.Quantity,
		Price:       line.Price.Round(2),
		BuyingPrice: line.BuyingPrice.Round(2),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.CreatedAt,
	}, nil
}

// Profit is derived from the stored price and cost totals
func (o *Order) Profit() decimal.Decimal {
	return o.TotalPrice.Sub(o.TotalBuyingPrice)
}

// HasDue reports whether the customer still owes on this order
func (o *Order) HasDue() bool {
	return o.DueAmount.IsPositive()
}
