package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SettlementMetrics counts due settlements by owner kind and outcome
type SettlementMetrics struct {
	attempts metric.Int64Counter
	amount   metric.Float64Counter
	debts    metric.Int64Histogram
	duration metric.Float64Histogram
}

// NewSettlementMetrics registers the instruments on meter
func NewSettlementMetrics(meter metric.Meter) (*SettlementMetrics, error) {
	if meter == nil {
		return nil, errors.New("NewSettlementMetrics: meter cannot be nil")
	}
	attempts, err := meter.Int64Counter("shopledger.settlement.attempts",
		metric.WithDescription("Due settlement requests by owner kind and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	amount, err := meter.Float64Counter("shopledger.settlement.amount",
		metric.WithDescription("Money applied to outstanding dues"),
		metric.WithUnit("{currency}"),
	)
	if err != nil {
		return nil, err
	}
	debts, err := meter.Int64Histogram("shopledger.settlement.debts_touched",
		metric.WithDescription("Debt records changed by one settlement"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 10, 25, 50),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("shopledger.settlement.duration",
		metric.WithDescription("Settlement latency including the ledger transaction"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &SettlementMetrics{attempts: attempts, amount: amount, debts: debts, duration: duration}, nil
}

// RecordSuccess records an applied settlement
func (m *SettlementMetrics) RecordSuccess(ctx context.Context, ownerKind string, applied decimal.Decimal, debtsTouched int, elapsed time.Duration) {
	if m == nil {
		return
	}
	kind := attribute.String("owner_kind", ownerKind)
	m.attempts.Add(ctx, 1, metric.WithAttributes(kind, attribute.String("outcome", "applied")))
	m.amount.Add(ctx, applied.InexactFloat64(), metric.WithAttributes(kind))
	m.debts.Record(ctx, int64(debtsTouched), metric.WithAttributes(kind))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(kind))
}

// RecordRejection records a settlement refused with an error code
func (m *SettlementMetrics) RecordRejection(ctx context.Context, ownerKind, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	kind := attribute.String("owner_kind", ownerKind)
	m.attempts.Add(ctx, 1, metric.WithAttributes(kind, attribute.String("outcome", code)))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(kind))
}
