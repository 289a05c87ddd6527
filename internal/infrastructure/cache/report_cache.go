package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shopledger/backend/internal/domain/report"
)

type reportEntry struct {
	value     []byte
	expiresAt time.Time
}

// InMemoryReportCache holds report payloads in process memory
type InMemoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]reportEntry
	now     func() time.Time
}

// NewInMemoryReportCache creates an empty cache
func NewInMemoryReportCache(opts ...InMemoryOption) *InMemoryReportCache {
	o := buildInMemoryOptions(opts)
	return &InMemoryReportCache{
		entries: make(map[string]reportEntry),
		now:     o.now,
	}
}

// Get returns a copy of the cached payload if it has not expired
func (c *InMemoryReportCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

// Set stores value for ttl. A non-positive ttl is ignored.
func (c *InMemoryReportCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = reportEntry{value: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// InvalidateAll empties the cache
func (c *InMemoryReportCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]reportEntry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries
func (c *InMemoryReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ report.Cache = (*InMemoryReportCache)(nil)
