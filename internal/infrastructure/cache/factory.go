package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/report"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/config"
)

// Stores bundles the caches the application needs
type Stores struct {
	Reports     report.Cache
	Idempotency shared.IdempotencyStore
	// Redis is nil when the in-memory stores are in use
	Redis *redis.Client
}

// Close releases the stores and the Redis connection, if any
func (s *Stores) Close() error {
	var firstErr error
	if s.Idempotency != nil {
		if err := s.Idempotency.Close(); err != nil {
			firstErr = err
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Factory builds Redis-backed stores, falling back to memory when allowed
type Factory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	connect               func(context.Context, config.RedisConfig) (*redis.Client, error)
}

// FactoryOption configures the Factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to
// in-memory stores. Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// NewFactory creates a new factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		connect:               NewRedisClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// InMemory returns process-local stores
func (f *Factory) InMemory() *Stores {
	return &Stores{
		Reports:     NewInMemoryReportCache(),
		Idempotency: NewInMemoryIdempotencyStore(),
	}
}

// Create connects to Redis when it is enabled. Without Redis, idempotency
// claims are not shared between instances.
func (f *Factory) Create(ctx context.Context) (*Stores, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory report cache and idempotency store")
		return f.InMemory(), nil
	}

	client, err := f.connect(ctx, f.redisConfig)
	if err != nil {
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("redis required but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory stores",
			zap.String("addr", f.redisConfig.Addr()),
			zap.Error(err),
		)
		return f.InMemory(), nil
	}

	f.logger.Info("Using Redis report cache and idempotency store", zap.String("addr", f.redisConfig.Addr()))
	return &Stores{
		Reports:     NewRedisReportCache(client, ""),
		Idempotency: NewRedisIdempotencyStore(client, ""),
		Redis:       client,
	}, nil
}
