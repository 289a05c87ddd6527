package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

const defaultSweepInterval = 5 * time.Minute

// InMemoryIdempotencyStore keeps claimed request keys in process memory.
// Claims are not shared between instances, so it only fits single-node
// deployments and tests.
type InMemoryIdempotencyStore struct {
	mu        sync.Mutex
	claims    map[string]time.Time // key -> expiry
	now       func() time.Time
	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// InMemoryOption configures in-memory stores
type InMemoryOption func(*inMemoryOptions)

type inMemoryOptions struct {
	now           func() time.Time
	sweepInterval time.Duration
}

// WithNow replaces the wall clock, for tests
func WithNow(now func() time.Time) InMemoryOption {
	return func(o *inMemoryOptions) { o.now = now }
}

// WithSweepInterval sets how often expired entries are purged
func WithSweepInterval(d time.Duration) InMemoryOption {
	return func(o *inMemoryOptions) { o.sweepInterval = d }
}

func buildInMemoryOptions(opts []InMemoryOption) inMemoryOptions {
	o := inMemoryOptions{now: time.Now, sweepInterval: defaultSweepInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewInMemoryIdempotencyStore creates the store and starts its sweeper
func NewInMemoryIdempotencyStore(opts ...InMemoryOption) *InMemoryIdempotencyStore {
	o := buildInMemoryOptions(opts)
	s := &InMemoryIdempotencyStore{
		claims: make(map[string]time.Time),
		now:    o.now,
		stop:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.sweepLoop(o.sweepInterval)
	return s
}

// MarkProcessed claims key until ttl elapses. An expired claim can be re-taken.
func (s *InMemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiry, ok := s.claims[key]; ok && now.Before(expiry) {
		return false, nil
	}
	s.claims[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether key holds a live claim
func (s *InMemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.claims[key]
	return ok && s.now().Before(expiry), nil
}

// Release drops the claim on key
func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.claims, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryIdempotencyStore) sweepLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *InMemoryIdempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, expiry := range s.claims {
		if !now.Before(expiry) {
			delete(s.claims, key)
		}
	}
}

// Size returns the number of claims held, expired ones included until swept
func (s *InMemoryIdempotencyStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.claims)
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
