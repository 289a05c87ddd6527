package settlement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/settlement"
	"github.com/shopledger/backend/internal/domain/trade"
)

// Messages returned with a committed settlement
const (
	CustomerPaidMessage     = "Payment successful"
	SupplierAdjustedMessage = "Due amount adjusted successfully!"
)

// SettleDueRequest carries the amount to apply to an owner's dues
type SettleDueRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SettlementResponse describes a committed settlement
type SettlementResponse struct {
	Message        string                  `json:"message"`
	OwnerKind      settlement.OwnerKind    `json:"owner_kind"`
	OwnerKey       string                  `json:"owner_key"`
	Amount         decimal.Decimal         `json:"amount"`
	TotalDueBefore decimal.Decimal         `json:"total_due_before"`
	TotalDueAfter  decimal.Decimal         `json:"total_due_after"`
	Allocations    []settlement.Allocation `json:"allocations"`
}

// CustomerPaymentResponse is a customer settlement with the customer's orders after it
type CustomerPaymentResponse struct {
	SettlementResponse
	CustomerNumber int           `json:"customer_number"`
	Orders         []trade.Order `json:"orders"`
}

// SupplierAdjustmentResponse is a supplier settlement with the supplier's purchases after it
type SupplierAdjustmentResponse struct {
	SettlementResponse
	SupplierID uuid.UUID            `json:"supplier_id"`
	Purchases  []trade.PurchaseView `json:"purchases"`
}
