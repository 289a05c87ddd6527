package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/trade"
)

// ==================== Order DTOs ====================

// PlaceOrderRequest represents a checkout. Leaving CustomerNumber empty
// registers a new customer with the next free number.
type PlaceOrderRequest struct {
	CustomerNumber  *int             `json:"customer_number" binding:"omitempty,min=1"`
	CustomerName    string           `json:"customer_name" binding:"max=255"`
	CustomerPhone   string           `json:"customer_phone" binding:"max=50"`
	CustomerAddress string           `json:"customer_address"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Paid            decimal.Decimal  `json:"paid_amount" binding:"money"`
}

// OrderItemInput is a cart line. Price defaults to the product's list price.
type OrderItemInput struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	Price     *decimal.Decimal `json:"price" binding:"omitempty,money"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	CustomerNumber   int                 `json:"customer_number"`
	CustomerName     string              `json:"customer_name"`
	CustomerPhone    string              `json:"customer_phone"`
	CustomerAddress  string              `json:"customer_address"`
	TotalQuantity    int                 `json:"total_quantity"`
	TotalPrice       decimal.Decimal     `json:"total_price"`
	TotalBuyingPrice decimal.Decimal     `json:"total_buying_price"`
	Profit           decimal.Decimal     `json:"profit"`
	PaidAmount       decimal.Decimal     `json:"paid_amount"`
	DueAmount        decimal.Decimal     `json:"due_amount"`
	ExtraAmount      decimal.Decimal     `json:"extra_amount"`
	Items            []OrderItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	Version          int                 `json:"version"`
}

// OrderListFilter represents filter options for order list
type OrderListFilter struct {
	Search         string `form:"search"`
	CustomerNumber int    `form:"customer_number" binding:"omitempty,min=1"`
	HasDue         *bool  `form:"has_due"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy         string `form:"sort_by"`
	SortDesc       bool   `form:"sort_desc"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			Price:       item.Price,
			BuyingPrice: item.BuyingPrice,
			LineTotal:   item.LineTotal(),
		}
	}
	return OrderResponse{
		ID:               o.ID,
		CustomerNumber:   o.CustomerNumber,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		CustomerAddress:  o.CustomerAddress,
		TotalQuantity:    o.TotalQuantity,
		TotalPrice:       o.TotalPrice,
		TotalBuyingPrice: o.TotalBuyingPrice,
		Profit:           o.Profit(),
		PaidAmount:       o.PaidAmount,
		DueAmount:        o.DueAmount,
		ExtraAmount:      o.ExtraAmount,
		Items:            items,
		CreatedAt:        o.CreatedAt,
		Version:          o.Version,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}

// ==================== Purchase DTOs ====================

// PurchaseDateLayout is the calendar date format of purchase_date
const PurchaseDateLayout = "2006-01-02"

// RecordPurchaseRequest represents a stock delivery from a supplier
type RecordPurchaseRequest struct {
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	SupplierID    uuid.UUID       `json:"supplier_id" binding:"required"`
	Quantity      int             `json:"purchase_quantity" binding:"required,min=1"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required,money"`
	PurchaseDate  string          `json:"purchase_date" binding:"required,datetime=2006-01-02"`
	Payment       decimal.Decimal `json:"payment_bill_amount" binding:"money"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	Quantity          int             `json:"purchase_quantity"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaymentBillAmount decimal.Decimal `json:"payment_bill_amount"`
	DueBillAmount     decimal.Decimal `json:"due_bill_amount"`
	PurchaseDate      string          `json:"purchase_date"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PurchaseListFilter represents filter options for purchase list
type PurchaseListFilter struct {
	Search     string     `form:"search"`
	SupplierID *uuid.UUID `form:"-"` // parsed from the supplier_id query parameter
	ProductID  *uuid.UUID `form:"-"` // parsed from the product_id query parameter
	HasDue     *bool      `form:"has_due"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy     string     `form:"sort_by"`
	SortDesc   bool       `form:"sort_desc"`
}

// ProductOption is a product entry of the purchase form
type ProductOption struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"product_name"`
	Code         string          `json:"product_code"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
}

// SupplierOption is a supplier entry of the purchase form
type SupplierOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PurchaseFormOptions lists everything the purchase form lets a user pick
type PurchaseFormOptions struct {
	Products  []ProductOption  `json:"products"`
	Suppliers []SupplierOption `json:"suppliers"`
}

// ProductPurchaseInfo prefills the purchase form for one product
type ProductPurchaseInfo struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	StockAmount  int             `json:"stock_amount"`
}

// ToPurchaseResponse converts a domain Purchase to PurchaseResponse
func ToPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID,
		ProductID:         p.ProductID,
		SupplierID:        p.SupplierID,
		Quantity:          p.Quantity,
		PurchasePrice:     p.PurchasePrice,
		TotalAmount:       p.TotalAmount,
		PaymentBillAmount: p.PaymentBillAmount,
		DueBillAmount:     p.DueBillAmount,
		PurchaseDate:      p.PurchaseDate.Format(PurchaseDateLayout),
		CreatedAt:         p.CreatedAt,
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
