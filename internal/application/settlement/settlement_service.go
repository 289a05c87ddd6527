package settlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/settlement"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/telemetry"
)

// Service settles customer and supplier dues oldest first
type Service struct {
	scope          LedgerScope
	orderRepo      trade.OrderRepository
	purchaseRepo   trade.PurchaseRepository
	supplierRepo   partner.SupplierRepository
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	eventPublisher shared.EventPublisher
	metrics        *telemetry.SettlementMetrics
	logger         *zap.Logger
}

// NewService creates a new settlement Service
func NewService(
	scope LedgerScope,
	orderRepo trade.OrderRepository,
	purchaseRepo trade.PurchaseRepository,
	supplierRepo partner.SupplierRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scope:          scope,
		orderRepo:      orderRepo,
		purchaseRepo:   purchaseRepo,
		supplierRepo:   supplierRepo,
		idempotencyTTL: shared.DefaultIdempotencyConfig().TTL,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetIdempotencyStore enables request de-duplication for keyed settlements
func (s *Service) SetIdempotencyStore(store shared.IdempotencyStore, ttl time.Duration) {
	s.idempotency = store
	if ttl > 0 {
		s.idempotencyTTL = ttl
	}
}

// SetMetrics sets the settlement instruments
func (s *Service) SetMetrics(m *telemetry.SettlementMetrics) {
	s.metrics = m
}

// PayCustomerDue applies a payment to the customer's orders, oldest first
func (s *Service) PayCustomerDue(ctx context.Context, customerNumber int, req SettleDueRequest, idempotencyKey string) (*CustomerPaymentResponse, error) {
	if customerNumber < 1 {
		return nil, shared.ErrInvalidInput.WithMessage("Customer number must be positive")
	}
	ownerKey := strconv.Itoa(customerNumber)

	result, err := s.settle(ctx, settlement.OwnerCustomer, ownerKey, req.Amount, idempotencyKey)
	if err != nil {
		return nil, err
	}
	result.Message = CustomerPaidMessage

	orders, err := s.orderRepo.FindByCustomer(ctx, customerNumber)
	if err != nil {
		s.logger.Warn("settled but failed to reload orders",
			zap.Int("customer_number", customerNumber), zap.Error(err))
		orders = []trade.Order{}
	}
	return &CustomerPaymentResponse{
		SettlementResponse: *result,
		CustomerNumber:     customerNumber,
		Orders:             orders,
	}, nil
}

// AdjustSupplierDue applies a payment to the supplier's purchase bills, oldest first
func (s *Service) AdjustSupplierDue(ctx context.Context, supplierID uuid.UUID, req SettleDueRequest, idempotencyKey string) (*SupplierAdjustmentResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	result, err := s.settle(ctx, settlement.OwnerSupplier, supplierID.String(), req.Amount, idempotencyKey)
	if err != nil {
		return nil, err
	}
	result.Message = SupplierAdjustedMessage

	purchases, err := s.purchaseRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Warn("settled but failed to reload purchases",
			zap.String("supplier_id", supplierID.String()), zap.Error(err))
		purchases = []trade.PurchaseView{}
	}
	return &SupplierAdjustmentResponse{
		SettlementResponse: *result,
		SupplierID:         supplierID,
		Purchases:          purchases,
	}, nil
}

// settle claims the idempotency key, then plans and saves the settlement in one transaction.
// A failed attempt releases the key so the client may retry.
func (s *Service) settle(ctx context.Context, kind settlement.OwnerKind, ownerKey string, amount decimal.Decimal, idempotencyKey string) (result *SettlementResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "settlement", "settle",
		attribute.String("settlement.owner_kind", string(kind)),
		attribute.String("settlement.owner_key", ownerKey),
		attribute.String("settlement.amount", amount.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	started := time.Now()
	if err := settlement.ValidateAmount(amount); err != nil {
		s.metrics.RecordRejection(ctx, string(kind), codeOf(err), time.Since(started))
		return nil, err
	}

	claimed, err := s.claim(ctx, kind, ownerKey, idempotencyKey)
	if err != nil {
		return nil, err
	}

	var (
		plan      *settlement.Plan
		dueBefore decimal.Decimal
	)
	err = s.scope.Execute(ctx, kind, func(ledger settlement.Ledger) error {
		debts, err := ledger.LoadForUpdate(ctx, ownerKey)
		if err != nil {
			return err
		}
		p, err := settlement.Allocate(ownerKey, amount, debts)
		if err != nil {
			return err
		}
		if err := ledger.Save(ctx, p.Apply(debts)); err != nil {
			return err
		}
		plan = p
		dueBefore = settlement.TotalDue(debts)
		return nil
	})
	if err != nil {
		err = s.classify(kind, ownerKey, err)
		s.release(ctx, claimed)
		s.metrics.RecordRejection(ctx, string(kind), codeOf(err), time.Since(started))
		return nil, err
	}

	s.metrics.RecordSuccess(ctx, string(kind), plan.Applied(), len(plan.Allocations), time.Since(started))
	s.publish(ctx, settlement.NewDueSettledEvent(kind, plan))

	s.logger.Info("due settled",
		zap.String("owner_kind", string(kind)),
		zap.String("owner_key", ownerKey),
		zap.String("amount", amount.StringFixed(settlement.MoneyScale)),
		zap.Int("debts_touched", len(plan.Allocations)),
	)

	return &SettlementResponse{
		OwnerKind:      kind,
		OwnerKey:       ownerKey,
		Amount:         plan.Amount,
		TotalDueBefore: dueBefore,
		TotalDueAfter:  dueBefore.Sub(plan.Applied()),
		Allocations:    plan.Allocations,
	}, nil
}

// classify passes business rejections through and turns storage failures into a retryable error
func (s *Service) classify(kind settlement.OwnerKind, ownerKey string, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && !errors.Is(err, shared.ErrConcurrencyConflict) {
		return err
	}
	s.logger.Error("settlement could not be saved",
		zap.String("owner_kind", string(kind)),
		zap.String("owner_key", ownerKey),
		zap.Error(err),
	)
	return shared.ErrPersistenceFailure
}

// claim reserves the idempotency key and returns the namespaced key to release on failure
func (s *Service) claim(ctx context.Context, kind settlement.OwnerKind, ownerKey, key string) (string, error) {
	if s.idempotency == nil || key == "" {
		return "", nil
	}
	namespaced := fmt.Sprintf("settlement:%s:%s:%s", kind, ownerKey, key)
	ok, err := s.idempotency.MarkProcessed(ctx, namespaced, s.idempotencyTTL)
	if err != nil {
		s.logger.Error("idempotency store unavailable", zap.Error(err))
		return "", shared.ErrPersistenceFailure
	}
	if !ok {
		return "", shared.ErrDuplicateRequest
	}
	return namespaced, nil
}

func (s *Service) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Release(ctx, key); err != nil {
		s.logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, event shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish settlement event", zap.Error(err))
	}
}

func codeOf(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return shared.ErrPersistenceFailure.Code
}
