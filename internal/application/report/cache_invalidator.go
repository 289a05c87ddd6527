package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/settlement"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

// CacheInvalidator drops cached reports whenever sales, stock or dues change
type CacheInvalidator struct {
	service *Service
	logger  *zap.Logger
}

// NewCacheInvalidator creates a handler that invalidates the service's cache
func NewCacheInvalidator(service *Service, logger *zap.Logger) *CacheInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheInvalidator{service: service, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *CacheInvalidator) EventTypes() []string {
	return []string{
		trade.EventTypeOrderPlaced,
		trade.EventTypePurchaseRecorded,
		settlement.EventTypeDueSettled,
	}
}

// Handle invalidates every cached report
func (h *CacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	if err := h.service.Invalidate(ctx); err != nil {
		h.logger.Warn("failed to invalidate report cache",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
		return err
	}
	h.logger.Debug("report cache invalidated", zap.String("event_type", event.EventType()))
	return nil
}

var _ shared.EventHandler = (*CacheInvalidator)(nil)
