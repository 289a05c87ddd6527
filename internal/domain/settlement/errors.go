package settlement

import "github.com/shopledger/backend/internal/domain/shared"

// Settlement rejections
var (
	ErrInvalidAmount     = shared.NewDomainError("INVALID_AMOUNT", "Amount must be a positive value with at most two decimal places")
	ErrNoOutstandingDebt = shared.NewDomainError("NO_OUTSTANDING_DEBT", "No outstanding due found")
	ErrAmountExceedsDue  = shared.NewDomainError("AMOUNT_EXCEEDS_DUE", "The amount exceeds the total due")
)
