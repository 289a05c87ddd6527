package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "telemetry:query_start"

// DBTracingConfig controls the GORM tracing plugin
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include bound variables in db.statement
	SlowQueryThresh time.Duration // spans over this get db.slow_query=true
	DBName          string
	TracerProvider  trace.TracerProvider // nil uses the global provider
}

// RegisterDBTracing installs otelgorm on db and flags slow statements on
// their spans
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{}
	if cfg.DBName != "" {
		opts = append(opts, otelgorm.WithDBName(cfg.DBName))
	}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	threshold := cfg.SlowQueryThresh
	if threshold <= 0 {
		threshold = 200 * time.Millisecond
	}
	if err := registerSlowQueryCallbacks(db, threshold); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", threshold),
	)
	return nil
}

func registerSlowQueryCallbacks(db *gorm.DB, threshold time.Duration) error {
	start := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}
	finish := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		elapsed := time.Since(v.(time.Time))
		if elapsed < threshold {
			return
		}
		span := trace.SpanFromContext(tx.Statement.Context)
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.duration_ms", elapsed.Milliseconds()),
		)
	}

	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("telemetry:before_create", start) },
		func() error { return cb.Create().After("gorm:create").Register("telemetry:after_create", finish) },
		func() error { return cb.Query().Before("gorm:query").Register("telemetry:before_query", start) },
		func() error { return cb.Query().After("gorm:query").Register("telemetry:after_query", finish) },
		func() error { return cb.Update().Before("gorm:update").Register("telemetry:before_update", start) },
		func() error { return cb.Update().After("gorm:update").Register("telemetry:after_update", finish) },
		func() error { return cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", start) },
		func() error { return cb.Delete().After("gorm:delete").Register("telemetry:after_delete", finish) },
		func() error { return cb.Row().Before("gorm:row").Register("telemetry:before_row", start) },
		func() error { return cb.Row().After("gorm:row").Register("telemetry:after_row", finish) },
		func() error { return cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", start) },
		func() error { return cb.Raw().After("gorm:raw").Register("telemetry:after_raw", finish) },
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
