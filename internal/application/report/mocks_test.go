package report

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopledger/backend/internal/domain/report"
	"github.com/shopledger/backend/internal/domain/shared"
)

// MockRepository is a mock implementation of report.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SalesRecords(ctx context.Context, from, to *time.Time) ([]report.SalesRecord, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]report.SalesRecord), args.Error(1)
}

func (m *MockRepository) CatalogCounts(ctx context.Context) (report.CatalogCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(report.CatalogCounts), args.Error(1)
}

func (m *MockRepository) CustomerCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) TotalDue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) Inventory(ctx context.Context, filter shared.Filter) ([]report.InventoryItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]report.InventoryItem), args.Get(1).(int64), args.Error(2)
}

// mapCache is a report.Cache without expiry
type mapCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated int
	err         error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, false, c.err
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.entries[key] = value
	return nil
}

func (c *mapCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.entries = make(map[string][]byte)
	c.invalidated++
	return nil
}
