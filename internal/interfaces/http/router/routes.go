package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

// Handlers are the API handlers mounted under /api/v1
type Handlers struct {
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Supplier *handler.SupplierHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Purchase *handler.PurchaseHandler
	Report   *handler.ReportHandler
}

// BodyLimits caps request bodies. Product forms carry an image and get the upload limit.
type BodyLimits struct {
	MaxBodySize   int64
	MaxUploadSize int64
}

// APIGroups builds the domain route groups
func APIGroups(h Handlers, limits BodyLimits) []*DomainGroup {
	bodyLimit := limit(limits.MaxBodySize)

	categories := NewDomainGroup("catalog", "/categories").Use(bodyLimit...)
	categories.GET("", h.Category.List).
		POST("", h.Category.Create).
		GET("/:id", h.Category.GetByID).
		PUT("/:id", h.Category.Update).
		DELETE("/:id", h.Category.Delete).
		GET("/:id/products", h.Category.Products)

	products := NewDomainGroup("catalog", "/products").Use(limit(limits.MaxUploadSize)...)
	products.GET("", h.Product.List).
		POST("", h.Product.Create).
		GET("/:id", h.Product.GetByID).
		PUT("/:id", h.Product.Update).
		DELETE("/:id", h.Product.Delete).
		POST("/:id/stock", h.Product.AddStock).
		GET("/:id/image-url", h.Product.ImageURL)

	suppliers := NewDomainGroup("partner", "/suppliers").Use(bodyLimit...)
	suppliers.GET("", h.Supplier.List).
		POST("", h.Supplier.Create).
		GET("/:id", h.Supplier.GetByID).
		PUT("/:id", h.Supplier.Update).
		DELETE("/:id", h.Supplier.Delete).
		GET("/:id/summary", h.Supplier.Summary).
		GET("/:id/purchases", h.Supplier.Purchases).
		GET("/:id/due", h.Supplier.Due).
		POST("/:id/adjust-due", h.Supplier.AdjustDue)

	customers := NewDomainGroup("partner", "/customers").Use(bodyLimit...)
	customers.GET("", h.Customer.List).
		GET("/with-due", h.Customer.WithDue).
		GET("/details", h.Customer.Details).
		GET("/:number/due", h.Customer.Due).
		POST("/:number/pay-due", h.Customer.PayDue)

	orders := NewDomainGroup("trade", "/orders").Use(bodyLimit...)
	orders.GET("", h.Order.List).
		POST("", h.Order.PlaceOrder).
		GET("/:id", h.Order.GetByID)

	purchases := NewDomainGroup("trade", "/purchases").Use(bodyLimit...)
	purchases.GET("", h.Purchase.List).
		POST("", h.Purchase.Record).
		GET("/form-options", h.Purchase.FormOptions).
		GET("/products/:id", h.Purchase.ProductInfo).
		GET("/:id", h.Purchase.GetByID)

	reports := NewDomainGroup("report", "/reports")
	reports.GET("/overview", h.Report.Overview).
		GET("/profit", h.Report.Profit).
		GET("/profit/window", h.Report.ProfitWindow).
		GET("/inventory", h.Report.Inventory)

	return []*DomainGroup{categories, products, suppliers, customers, orders, purchases, reports}
}

func limit(max int64) []gin.HandlerFunc {
	if max <= 0 {
		return nil
	}
	return []gin.HandlerFunc{middleware.BodyLimit(max)}
}
