package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/shopledger/backend/internal/application/partner"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

// SupplierService is the partner use-case surface the supplier endpoints need
type SupplierService interface {
	Create(ctx context.Context, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*partnerapp.SupplierResponse, error)
	List(ctx context.Context, filter partnerapp.SupplierListFilter) ([]partnerapp.SupplierResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, id uuid.UUID) (*partner.SupplierSummary, error)
	Purchases(ctx context.Context, id uuid.UUID) ([]trade.PurchaseView, error)
	Due(ctx context.Context, id uuid.UUID) (*partnerapp.DueResponse, error)
}

// SupplierSettler applies an amount to a supplier's outstanding purchases
type SupplierSettler interface {
	AdjustSupplierDue(ctx context.Context, supplierID uuid.UUID, req settlementapp.SettleDueRequest, idempotencyKey string) (*settlementapp.SupplierAdjustmentResponse, error)
}

// SupplierHandler handles supplier-related API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService SupplierService
	settler         SupplierSettler
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService SupplierService, settler SupplierSettler) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		settler:         settler,
	}
}

// Create godoc
// @ID           createSupplier
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.SupplierRequest true "Supplier creation request"
// @Success      201 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// GetByID godoc
// @ID           getSupplierById
// @Summary      Get supplier by ID
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        search    query string false "Search by name, phone or email"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20) maximum(100)
// @Param        sort_by   query string false "Sort field" default(name)
// @Param        sort_desc query bool   false "Sort descending"
// @Success      200 {object} APIResponse[[]partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var filter partnerapp.SupplierListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	suppliers, total, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	p, size := page(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, suppliers, total, p, size)
}

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Supplier ID" format(uuid)
// @Param        request body partnerapp.SupplierRequest true "Supplier update request"
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Delete godoc
// @ID           deleteSupplier
// @Summary      Delete a supplier
// @Description  Suppliers with recorded purchases cannot be deleted
// @Tags         suppliers
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Summary godoc
// @ID           getSupplierSummary
// @Summary      Supplier purchase totals
// @Description  Total purchased quantity, amount, paid and due across the supplier's purchases
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partner.SupplierSummary]
// @Failure      404 {object} ErrorResponse
// @Router       /suppliers/{id}/summary [get]
func (h *SupplierHandler) Summary(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.supplierService.Summary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Purchases godoc
// @ID           listSupplierPurchases
// @Summary      List a supplier's purchases
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[[]trade.PurchaseView]
// @Failure      404 {object} ErrorResponse
// @Router       /suppliers/{id}/purchases [get]
func (h *SupplierHandler) Purchases(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	purchases, err := h.supplierService.Purchases(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchases)
}

// Due godoc
// @ID           getSupplierDue
// @Summary      Outstanding balance owed to a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.DueResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /suppliers/{id}/due [get]
func (h *SupplierHandler) Due(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	due, err := h.supplierService.Due(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, due)
}

// AdjustDue godoc
// @ID           adjustSupplierDue
// @Summary      Pay down a supplier's dues
// @Description  Applies the amount to the supplier's purchases oldest first. The whole amount is applied or nothing is.
// @Description  Repeating a request with the same Idempotency-Key answers 409.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id              path   string                          true  "Supplier ID" format(uuid)
// @Param        Idempotency-Key header string                          false "Client key that makes retries safe"
// @Param        request         body   settlementapp.SettleDueRequest true  "Amount to apply"
// @Success      200 {object} APIResponse[settlementapp.SupplierAdjustmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /suppliers/{id}/adjust-due [post]
func (h *SupplierHandler) AdjustDue(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req settlementapp.SettleDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.settler.AdjustSupplierDue(c.Request.Context(), id, req, c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
