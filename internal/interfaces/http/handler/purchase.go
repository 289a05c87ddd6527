package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/trade"
)

// PurchaseService is the trade use-case surface the purchase endpoints need
type PurchaseService interface {
	RecordPurchase(ctx context.Context, req tradeapp.RecordPurchaseRequest) (*tradeapp.PurchaseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*tradeapp.PurchaseResponse, error)
	List(ctx context.Context, filter tradeapp.PurchaseListFilter) ([]trade.PurchaseView, int64, error)
	FormOptions(ctx context.Context) (*tradeapp.PurchaseFormOptions, error)
	ProductPurchaseInfo(ctx context.Context, productID uuid.UUID) (*tradeapp.ProductPurchaseInfo, error)
}

// PurchaseHandler handles purchase-related API endpoints
type PurchaseHandler struct {
	BaseHandler
	purchaseService PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Record godoc
// @ID           recordPurchase
// @Summary      Record a purchase
// @Description  Adds the purchased quantity to stock and books the unpaid remainder as supplier due
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.RecordPurchaseRequest true "Purchase"
// @Success      201 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /purchases [post]
func (h *PurchaseHandler) Record(c *gin.Context) {
	var req tradeapp.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	purchase, err := h.purchaseService.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, purchase)
}

// GetByID godoc
// @ID           getPurchaseById
// @Summary      Get purchase by ID
// @Tags         purchases
// @Produce      json
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}

// List godoc
// @ID           listPurchases
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Param        search      query string false "Search by product or supplier name"
// @Param        supplier_id query string false "Supplier ID" format(uuid)
// @Param        product_id  query string false "Product ID" format(uuid)
// @Param        has_due     query bool   false "Only purchases with an outstanding balance"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20) maximum(100)
// @Param        sort_by     query string false "Sort field" default(purchase_date)
// @Param        sort_desc   query bool   false "Sort descending"
// @Success      200 {object} APIResponse[[]trade.PurchaseView]
// @Failure      400 {object} ErrorResponse
// @Router       /purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter tradeapp.PurchaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if !h.uuidQuery(c, "supplier_id", &filter.SupplierID) || !h.uuidQuery(c, "product_id", &filter.ProductID) {
		return
	}

	purchases, total, err := h.purchaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	p, size := page(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, purchases, total, p, size)
}

// FormOptions godoc
// @ID           getPurchaseFormOptions
// @Summary      Products and suppliers selectable on the purchase form
// @Tags         purchases
// @Produce      json
// @Success      200 {object} APIResponse[tradeapp.PurchaseFormOptions]
// @Router       /purchases/form-options [get]
func (h *PurchaseHandler) FormOptions(c *gin.Context) {
	options, err := h.purchaseService.FormOptions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// ProductInfo godoc
// @ID           getProductPurchaseInfo
// @Summary      Purchase form defaults for a product
// @Tags         purchases
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.ProductPurchaseInfo]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /purchases/products/{id} [get]
func (h *PurchaseHandler) ProductInfo(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	info, err := h.purchaseService.ProductPurchaseInfo(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}
