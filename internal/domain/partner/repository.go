package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	shared.Repository[Supplier]

	// ExistsByEmail checks whether an email is taken, optionally ignoring one supplier
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)

	// Summary aggregates purchases of a supplier
	Summary(ctx context.Context, id uuid.UUID) (*SupplierSummary, error)

	// TotalDue sums the unpaid purchase bills of a supplier
	TotalDue(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

// CustomerDirectory reads customers out of the sales orders
type CustomerDirectory interface {
	List(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	WithDue(ctx context.Context) ([]Customer, error)
	FindByNumber(ctx context.Context, number int) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	NextNumber(ctx context.Context) (int, error)
}
