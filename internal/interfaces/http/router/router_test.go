package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testHandlers returns handlers without services; tests only hit paths that
// are answered before a service is called.
func testHandlers() Handlers {
	return Handlers{
		Category: handler.NewCategoryHandler(nil),
		Product:  handler.NewProductHandler(nil),
		Supplier: handler.NewSupplierHandler(nil, nil),
		Customer: handler.NewCustomerHandler(nil, nil),
		Order:    handler.NewOrderHandler(nil),
		Purchase: handler.NewPurchaseHandler(nil),
		Report:   handler.NewReportHandler(nil),
	}
}

func serve(engine http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Setup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())

	g := NewDomainGroup("test", "/items")
	g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		POST("", func(c *gin.Context) { c.String(http.StatusCreated, "created") }).
		DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.Register(g).Setup()

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v2/items", "").Code)
	assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v2/items", "").Code)
	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodDelete, "/api/v2/items/9", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/items", "").Code)
}

func TestRouter_MiddlewareScopes(t *testing.T) {
	engine := gin.New()
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	r := NewRouter(engine).Use(func(c *gin.Context) {
		c.Header("X-API", "1")
		c.Next()
	})
	g := NewDomainGroup("test", "/items").Use(func(c *gin.Context) {
		c.Header("X-Group", "1")
		c.Next()
	})
	g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.Register(g).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, "1", w.Header().Get("X-API"))
	assert.Equal(t, "1", w.Header().Get("X-Group"))

	w = serve(engine, http.MethodGet, "/ping", "")
	assert.Empty(t, w.Header().Get("X-API"))
}

func TestDomainGroup_Accessors(t *testing.T) {
	g := NewDomainGroup("catalog", "/products")
	assert.Equal(t, "catalog", g.Name())
	assert.Equal(t, "/products", g.Prefix())
}

func TestAPIGroups_Routes(t *testing.T) {
	r := NewRouter(gin.New())
	r.Register(APIGroups(testHandlers(), BodyLimits{})...)

	var got []string
	for _, route := range r.Routes() {
		got = append(got, route.Method+" "+route.Path)
	}

	want := []string{
		"GET /api/v1/categories",
		"POST /api/v1/categories",
		"DELETE /api/v1/categories/:id",
		"GET /api/v1/categories/:id",
		"PUT /api/v1/categories/:id",
		"GET /api/v1/categories/:id/products",
		"GET /api/v1/customers",
		"GET /api/v1/customers/:number/due",
		"POST /api/v1/customers/:number/pay-due",
		"GET /api/v1/customers/details",
		"GET /api/v1/customers/with-due",
		"GET /api/v1/orders",
		"POST /api/v1/orders",
		"GET /api/v1/orders/:id",
		"GET /api/v1/products",
		"POST /api/v1/products",
		"DELETE /api/v1/products/:id",
		"GET /api/v1/products/:id",
		"PUT /api/v1/products/:id",
		"GET /api/v1/products/:id/image-url",
		"POST /api/v1/products/:id/stock",
		"GET /api/v1/purchases",
		"POST /api/v1/purchases",
		"GET /api/v1/purchases/:id",
		"GET /api/v1/purchases/form-options",
		"GET /api/v1/purchases/products/:id",
		"GET /api/v1/reports/inventory",
		"GET /api/v1/reports/overview",
		"GET /api/v1/reports/profit",
		"GET /api/v1/reports/profit/window",
		"GET /api/v1/suppliers",
		"POST /api/v1/suppliers",
		"DELETE /api/v1/suppliers/:id",
		"GET /api/v1/suppliers/:id",
		"PUT /api/v1/suppliers/:id",
		"POST /api/v1/suppliers/:id/adjust-due",
		"GET /api/v1/suppliers/:id/due",
		"GET /api/v1/suppliers/:id/purchases",
		"GET /api/v1/suppliers/:id/summary",
	}
	assert.Equal(t, want, got)

	// registering must not panic on overlapping static and param segments
	assert.NotPanics(t, r.Setup)
}

func testEngineConfig() EngineConfig {
	return EngineConfig{
		ServiceName: "shop-backend",
		Version:     "test",
		HTTP: config.HTTPConfig{
			MaxBodySize:   64,
			MaxUploadSize: 1 << 20,
		},
		Swagger: middleware.SwaggerConfig{Enabled: false},
		HealthChecks: map[string]handler.Pinger{
			"database": handler.PingFunc(func(_ context.Context) error { return nil }),
		},
	}
}

func TestNewEngine_SystemRoutes(t *testing.T) {
	cfg := testEngineConfig()
	cfg.Metrics = middleware.NewHTTPMetrics("shop")
	engine, _, err := NewEngine(cfg, testHandlers())
	require.NoError(t, err)

	w := serve(engine, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	w = serve(engine, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shop_http_requests_total")

	w = serve(engine, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_APIChain(t *testing.T) {
	t.Run("body limit", func(t *testing.T) {
		engine, _, err := NewEngine(testEngineConfig(), testHandlers())
		require.NoError(t, err)

		w := serve(engine, http.MethodPost, "/api/v1/categories", `{"name":"`+strings.Repeat("x", 200)+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("path validation before service", func(t *testing.T) {
		engine, _, err := NewEngine(testEngineConfig(), testHandlers())
		require.NoError(t, err)

		w := serve(engine, http.MethodGet, "/api/v1/products/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_INPUT")
	})

	t.Run("rate limit", func(t *testing.T) {
		cfg := testEngineConfig()
		cfg.RateLimiter = middleware.NewRateLimiter(0.001, 1)
		engine, _, err := NewEngine(cfg, testHandlers())
		require.NoError(t, err)

		first := serve(engine, http.MethodGet, "/api/v1/orders/bad", "")
		second := serve(engine, http.MethodGet, "/api/v1/orders/bad", "")
		assert.Equal(t, http.StatusBadRequest, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)

		// system routes are not limited
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/ping", "").Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		engine, _, err := NewEngine(testEngineConfig(), testHandlers())
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/widgets", "").Code)
	})
}

func TestNewEngine_InvalidTrustedProxy(t *testing.T) {
	cfg := testEngineConfig()
	cfg.HTTP.TrustedProxies = []string{"not-an-ip"}

	_, _, err := NewEngine(cfg, testHandlers())
	assert.Error(t, err)
}
