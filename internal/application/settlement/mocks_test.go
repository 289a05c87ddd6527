package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/settlement"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Summary(ctx context.Context, id uuid.UUID) (*partner.SupplierSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.SupplierSummary), args.Error(1)
}

func (m *MockSupplierRepository) TotalDue(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *trade.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) List(ctx context.Context, filter shared.Filter) ([]trade.PurchaseView, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.PurchaseView), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]trade.PurchaseView, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]trade.PurchaseView), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerNumber int) ([]trade.Order, error) {
	args := m.Called(ctx, customerNumber)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CustomerDue(ctx context.Context, customerNumber int) (decimal.Decimal, error) {
	args := m.Called(ctx, customerNumber)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Close() error {
	return m.Called().Error(0)
}

// memoryScope keeps debts per owner in memory and applies saves only when
// the whole callback succeeds, like a committed transaction.
type memoryScope struct {
	mu      sync.Mutex
	debts   map[string][]settlement.Debt
	saveErr error
	loadErr error
	commits int
}

func newMemoryScope() *memoryScope {
	return &memoryScope{debts: make(map[string][]settlement.Debt)}
}

func (s *memoryScope) Execute(_ context.Context, _ settlement.OwnerKind, fn func(settlement.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryLedger{scope: s, pending: make(map[uuid.UUID]settlement.Debt)}
	if err := fn(tx); err != nil {
		return err
	}
	for owner, debts := range s.debts {
		for i, d := range debts {
			if updated, ok := tx.pending[d.ID]; ok {
				updated.Version = d.Version + 1
				s.debts[owner][i] = updated
			}
		}
	}
	s.commits++
	return nil
}

func (s *memoryScope) snapshot(owner string) []settlement.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]settlement.Debt(nil), s.debts[owner]...)
}

type memoryLedger struct {
	scope   *memoryScope
	pending map[uuid.UUID]settlement.Debt
}

func (l *memoryLedger) LoadForUpdate(_ context.Context, ownerKey string) ([]settlement.Debt, error) {
	if l.scope.loadErr != nil {
		return nil, l.scope.loadErr
	}
	return append([]settlement.Debt(nil), l.scope.debts[ownerKey]...), nil
}

func (l *memoryLedger) Save(_ context.Context, debts []settlement.Debt) error {
	if l.scope.saveErr != nil {
		return l.scope.saveErr
	}
	for _, d := range debts {
		l.pending[d.ID] = d
	}
	return nil
}

func debt(owner string, total, paid string, created time.Time) settlement.Debt {
	t := decimal.RequireFromString(total)
	p := decimal.RequireFromString(paid)
	return settlement.Debt{
		ID:          uuid.New(),
		OwnerKey:    owner,
		TotalAmount: t,
		PaidAmount:  p,
		DueAmount:   t.Sub(p),
		CreatedAt:   created,
		Version:     1,
	}
}
