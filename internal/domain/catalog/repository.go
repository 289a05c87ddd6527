package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	shared.Repository[Category]
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]

	// FindByCode finds a product by its unique code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindByIDForUpdate loads a product with a row lock inside a transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCategory lists products of one category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Product, error)

	// ExistsByCode checks whether a code is taken, optionally ignoring one product
	ExistsByCode(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error)
}
