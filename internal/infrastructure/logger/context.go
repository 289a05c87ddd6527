package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey         contextKey = "logger"
	requestIDKey      contextKey = "request_id"
	ownerKey          contextKey = "owner"
	idempotencyKeyKey contextKey = "idempotency_key"
)

// RequestIDKey is the gin context key the request ID middleware writes to
const RequestIDKey = string(requestIDKey)

type owner struct {
	kind string
	key  string
}

// WithContext attaches the logger to ctx
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the attached logger or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// WithRequestID records the request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithOwner tags ctx with the party whose balance is being changed
// (for example "customer", "42").
func WithOwner(ctx context.Context, kind, key string) context.Context {
	return context.WithValue(ctx, ownerKey, owner{kind: kind, key: key})
}

// WithIdempotencyKey tags ctx with the client supplied idempotency key
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyKey, key)
}

// IdempotencyKey returns the idempotency key stored in ctx, if any
func IdempotencyKey(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	key, _ := ctx.Value(idempotencyKeyKey).(string)
	return key
}

// TraceID returns the active span's trace ID or ""
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// contextFields collects the correlation fields carried by ctx
func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	var fields []zap.Field
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if o, ok := ctx.Value(ownerKey).(owner); ok {
		fields = append(fields, zap.String("owner_kind", o.kind), zap.String("owner_key", o.key))
	}
	if key := IdempotencyKey(ctx); key != "" {
		fields = append(fields, zap.String("idempotency_key", key))
	}
	return fields
}

// L returns the logger attached to ctx enriched with trace, request and
// owner fields.
//
//	logger.L(ctx).Info("due settled", zap.String("amount", amount.String()))
func L(ctx context.Context) *zap.Logger {
	return FromContext(ctx).With(contextFields(ctx)...)
}

// Enrich adds the correlation fields from ctx to an explicit logger
func Enrich(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return L(ctx)
	}
	return logger.With(contextFields(ctx)...)
}
