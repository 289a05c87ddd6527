package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	partnerapp "github.com/shopledger/backend/internal/application/partner"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
)

// CustomerService is the customer directory surface the customer endpoints need
type CustomerService interface {
	List(ctx context.Context, filter partnerapp.CustomerListFilter) ([]partner.Customer, int64, error)
	WithDue(ctx context.Context) ([]partner.Customer, error)
	Due(ctx context.Context, number int) (*partnerapp.DueResponse, error)
	Details(ctx context.Context, lookup partnerapp.CustomerLookup) (*partnerapp.CustomerDetailsResponse, error)
}

// CustomerSettler applies a payment to a customer's unpaid orders
type CustomerSettler interface {
	PayCustomerDue(ctx context.Context, customerNumber int, req settlementapp.SettleDueRequest, idempotencyKey string) (*settlementapp.CustomerPaymentResponse, error)
}

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService CustomerService
	settler         CustomerSettler
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService CustomerService, settler CustomerSettler) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		settler:         settler,
	}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Customers are derived from orders and identified by their customer number
// @Tags         customers
// @Produce      json
// @Param        search    query string false "Search by name or phone"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20) maximum(100)
// @Param        sort_by   query string false "Sort field" default(customer_number)
// @Param        sort_desc query bool   false "Sort descending"
// @Success      200 {object} APIResponse[[]partner.Customer]
// @Failure      400 {object} ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	p, size := page(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, customers, total, p, size)
}

// WithDue godoc
// @ID           listCustomersWithDue
// @Summary      List customers with an outstanding balance
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[[]partner.Customer]
// @Router       /customers/with-due [get]
func (h *CustomerHandler) WithDue(c *gin.Context) {
	customers, err := h.customerService.WithDue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// Details godoc
// @ID           getCustomerDetails
// @Summary      Customer details and orders
// @Description  Looks a customer up by number or phone. The number wins when both are given.
// @Tags         customers
// @Produce      json
// @Param        customer_number query int    false "Customer number"
// @Param        phone           query string false "Customer phone"
// @Success      200 {object} APIResponse[partnerapp.CustomerDetailsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /customers/details [get]
func (h *CustomerHandler) Details(c *gin.Context) {
	var lookup partnerapp.CustomerLookup
	if err := c.ShouldBindQuery(&lookup); err != nil {
		h.BindError(c, err)
		return
	}
	if lookup.CustomerNumber == 0 && lookup.Phone == "" {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "customer_number or phone is required")
		return
	}

	details, err := h.customerService.Details(c.Request.Context(), lookup)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, details)
}

// Due godoc
// @ID           getCustomerDue
// @Summary      Outstanding balance of a customer
// @Tags         customers
// @Produce      json
// @Param        number path int true "Customer number" minimum(1)
// @Success      200 {object} APIResponse[partnerapp.DueResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /customers/{number}/due [get]
func (h *CustomerHandler) Due(c *gin.Context) {
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}

	due, err := h.customerService.Due(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, due)
}

// PayDue godoc
// @ID           payCustomerDue
// @Summary      Record a customer payment against unpaid orders
// @Description  Applies the amount to the customer's orders oldest first. The whole amount is applied or nothing is.
// @Description  Repeating a request with the same Idempotency-Key answers 409.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        number          path   int                             true  "Customer number" minimum(1)
// @Param        Idempotency-Key header string                          false "Client key that makes retries safe"
// @Param        request         body   settlementapp.SettleDueRequest true  "Amount paid"
// @Success      200 {object} APIResponse[settlementapp.CustomerPaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /customers/{number}/pay-due [post]
func (h *CustomerHandler) PayDue(c *gin.Context) {
	number, ok := h.intParam(c, "number")
	if !ok {
		return
	}

	var req settlementapp.SettleDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.settler.PayCustomerDue(c.Request.Context(), number, req, c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
