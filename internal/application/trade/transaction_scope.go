package trade

import (
	"context"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories an
// order or purchase touches. Stock changes and the trade record commit or
// roll back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories share one underlying database transaction
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	Orders() trade.OrderRepository
	Purchases() trade.PurchaseRepository
	Customers() partner.CustomerDirectory
}

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	products  catalog.ProductRepository
	orders    trade.OrderRepository
	purchases trade.PurchaseRepository
	customers partner.CustomerDirectory
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	orders trade.OrderRepository,
	purchases trade.PurchaseRepository,
	customers partner.CustomerDirectory,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		products:  products,
		orders:    orders,
		purchases: purchases,
		customers: customers,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.products }
func (s *NoOpTransactionScope) Orders() trade.OrderRepository       { return s.orders }
func (s *NoOpTransactionScope) Purchases() trade.PurchaseRepository { return s.purchases }
func (s *NoOpTransactionScope) Customers() partner.CustomerDirectory {
	return s.customers
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
