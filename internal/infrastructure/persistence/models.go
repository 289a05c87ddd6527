package persistence

import (
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/trade"
)

// Models lists every persisted type in dependency order
func Models() []any {
	return []any{
		&catalog.Category{},
		&catalog.Product{},
		&partner.Supplier{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.Purchase{},
	}
}
