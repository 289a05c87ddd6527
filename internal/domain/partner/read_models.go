package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierSummary aggregates a supplier's purchase history
type SupplierSummary struct {
	SupplierID       uuid.UUID       `json:"supplier_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	TotalPurchases   int64           `json:"total_products"`
	TotalQuantity    int64           `json:"total_quantity"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	TotalBuyingPrice decimal.Decimal `json:"total_buying_price"`
	TotalDue         decimal.Decimal `json:"total_due"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
}

// Customer is a distinct buyer derived from sales orders.
// Customers have no table of their own; the customer number ties orders together.
type Customer struct {
	CustomerNumber  int             `json:"customer_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	OrderCount      int64           `json:"order_count"`
	TotalDue        decimal.Decimal `json:"total_due"`
	LastOrderAt     time.Time       `json:"last_order_at"`
}
