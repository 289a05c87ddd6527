package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func tracedRouter(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(RequestID(), TracingWithConfig(TracingConfig{
		ServiceName:    "shop-backend",
		Enabled:        true,
		TracerProvider: tp,
	}), TracingAttributeInjector(), SpanErrorMarker())
	return router, recorder
}

func TestTracingWithConfig(t *testing.T) {
	router, recorder := tracedRouter(t)
	router.POST("/api/v1/customers/:number/pay-due", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers/42/pay-due", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	req.Header.Set(IdempotencyKeyHeader, "pay-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "POST /api/v1/customers/:number/pay-due", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("request_id", "req-1"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("idempotency_key", "pay-1"))
}

func TestSpanErrorMarker(t *testing.T) {
	router, recorder := tracedRouter(t)
	router.GET("/fails", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fails", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "Not Found", spans[1].Status().Description)
	assert.Contains(t, spans[1].Attributes(), attribute.Int("http.status_code", http.StatusNotFound))
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
