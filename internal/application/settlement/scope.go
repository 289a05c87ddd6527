package settlement

import (
	"context"

	"github.com/shopledger/backend/internal/domain/settlement"
)

// LedgerScope runs fn against the ledger of one owner kind inside a transaction.
// Returning an error from fn discards every write made through the ledger.
type LedgerScope interface {
	Execute(ctx context.Context, kind settlement.OwnerKind, fn func(settlement.Ledger) error) error
}
