package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/trade"
)

// SupplierRequest carries the editable fields of a supplier
type SupplierRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`
	Note    string `json:"note" binding:"max=1000"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
}

// DueResponse is the outstanding balance of one supplier or customer
type DueResponse struct {
	SupplierID     *uuid.UUID      `json:"supplier_id,omitempty"`
	CustomerNumber *int            `json:"customer_number,omitempty"`
	TotalDue       decimal.Decimal `json:"total_due"`
}

// CustomerListFilter represents filter options for the customer directory
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
}

// CustomerLookup identifies a customer by number or phone; number wins when both are set
type CustomerLookup struct {
	CustomerNumber int    `form:"customer_number" binding:"omitempty,min=1"`
	Phone          string `form:"phone"`
}

// CustomerOrderResponse is an order line of the customer details page
type CustomerOrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	ExtraAmount   decimal.Decimal `json:"extra_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustomerDetailsResponse is a customer with the orders they placed
type CustomerDetailsResponse struct {
	partner.Customer
	Orders []CustomerOrderResponse `json:"orders"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toCustomerOrders(orders []trade.Order) []CustomerOrderResponse {
	out := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = CustomerOrderResponse{
			ID:            o.ID,
			TotalQuantity: o.TotalQuantity,
			TotalPrice:    o.TotalPrice,
			PaidAmount:    o.PaidAmount,
			DueAmount:     o.DueAmount,
			ExtraAmount:   o.ExtraAmount,
			CreatedAt:     o.CreatedAt,
		}
	}
	return out
}

func (r SupplierRequest) details() partner.SupplierDetails {
	return partner.SupplierDetails{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Note:    r.Note,
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
