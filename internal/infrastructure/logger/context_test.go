package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		l := zap.NewExample()
		assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	})

	t.Run("falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		//nolint:staticcheck // nil context is tolerated
		assert.NotNil(t, FromContext(nil))
	})

	t.Run("ignores wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), loggerKey, "not a logger")
		assert.NotNil(t, FromContext(ctx))
	})
}

func TestRequestAndIdempotencyKeys(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, IdempotencyKey(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithIdempotencyKey(ctx, "pay-42-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "pay-42-1", IdempotencyKey(ctx))

	assert.Equal(t, ctx, WithIdempotencyKey(ctx, ""), "empty key leaves context untouched")
}

func TestL_AddsCorrelationFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithOwner(ctx, "customer", "42")
	ctx = WithIdempotencyKey(ctx, "key-9")

	L(ctx).Info("due settled")

	require.Equal(t, 1, recorded.Len())
	fields := recorded.All()[0].ContextMap()
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "customer", fields["owner_kind"])
	assert.Equal(t, "42", fields["owner_key"])
	assert.Equal(t, "key-9", fields["idempotency_key"])
	assert.NotContains(t, fields, "trace_id")
}

func TestL_AddsTraceFields(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = WithContext(ctx, zap.New(core))

	L(ctx).Info("traced")

	fields := recorded.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
	assert.Equal(t, span.SpanContext().TraceID().String(), TraceID(ctx))
	assert.Empty(t, TraceID(context.Background()))
}

func TestEnrich_UsesExplicitLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithRequestID(context.Background(), "req-7")

	Enrich(ctx, zap.New(core)).Info("explicit")
	Enrich(ctx, nil).Info("goes to nop")

	require.Equal(t, 1, recorded.Len())
	assert.Equal(t, "req-7", recorded.All()[0].ContextMap()["request_id"])
}
