package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerKind identifies which kind of party owes a group of debts
type OwnerKind string

const (
	// OwnerCustomer groups sales orders by customer number
	OwnerCustomer OwnerKind = "customer"
	// OwnerSupplier groups purchase bills by supplier id
	OwnerSupplier OwnerKind = "supplier"
)

// IsValid checks if the owner kind is known
func (k OwnerKind) IsValid() bool {
	return k == OwnerCustomer || k == OwnerSupplier
}

// Debt is an outstanding balance owed on a single order or purchase.
// DueAmount always equals TotalAmount - PaidAmount.
type Debt struct {
	ID          uuid.UUID
	OwnerKey    string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	DueAmount   decimal.Decimal
	CreatedAt   time.Time
	Version     int
}

// IsOutstanding reports whether anything is still owed
func (d Debt) IsOutstanding() bool {
	return d.DueAmount.GreaterThan(decimal.Zero)
}

// Ledger loads and stores the debts of one owner.
// Implementations run inside a transaction: LoadForUpdate must serialize
// concurrent settlements of the same owner and Save must reject rows whose
// version moved since they were loaded.
type Ledger interface {
	LoadForUpdate(ctx context.Context, ownerKey string) ([]Debt, error)
	Save(ctx context.Context, debts []Debt) error
}

// TotalDue sums the due amount of all debts
func TotalDue(debts []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.DueAmount)
	}
	return total
}
