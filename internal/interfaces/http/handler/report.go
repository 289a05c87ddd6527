package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	reportapp "github.com/shopledger/backend/internal/application/report"
	"github.com/shopledger/backend/internal/domain/report"
)

// ReportService is the reporting surface the report endpoints need
type ReportService interface {
	Overview(ctx context.Context) (*report.Overview, error)
	ProfitByRange(ctx context.Context, filter reportapp.ProfitRangeFilter) (*report.ProfitStatement, error)
	ProfitWindow(ctx context.Context, filter reportapp.ProfitWindowFilter) (*report.ProfitStatement, error)
	Inventory(ctx context.Context, filter reportapp.InventoryFilter) ([]report.InventoryItem, int64, error)
}

// ReportHandler handles dashboard and reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Overview godoc
// @ID           getReportOverview
// @Summary      Dashboard overview
// @Description  Catalog counts, outstanding dues, and sales and profit over the standard rolling windows
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse[report.Overview]
// @Failure      500 {object} ErrorResponse
// @Router       /reports/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	overview, err := h.reportService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// Profit godoc
// @ID           getProfitByRange
// @Summary      Profit over a named range
// @Tags         reports
// @Produce      json
// @Param        range query string false "Named range, today when empty" Enums(today, last_3_days, last_7_days, last_15_days, last_1_month, last_3_months, last_6_months, last_1_year, last_3_hours, last_5_hours, last_8_hours, all_time)
// @Success      200 {object} APIResponse[report.ProfitStatement]
// @Failure      400 {object} ErrorResponse
// @Router       /reports/profit [get]
func (h *ReportHandler) Profit(c *gin.Context) {
	var filter reportapp.ProfitRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	statement, err := h.reportService.ProfitByRange(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, statement)
}

// ProfitWindow godoc
// @ID           getProfitWindow
// @Summary      Profit over the last hours or a date range
// @Description  filter_by=hour uses hours_ago (default 1). filter_by=date_range uses start_date and end_date; a missing bound leaves that side open.
// @Description  Without filter_by every order is included.
// @Tags         reports
// @Produce      json
// @Param        filter_by  query string false "Window kind" Enums(hour, date_range)
// @Param        hours_ago  query int    false "Trailing hours" minimum(1)
// @Param        start_date query string false "First day (YYYY-MM-DD)"
// @Param        end_date   query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[report.ProfitStatement]
// @Failure      400 {object} ErrorResponse
// @Router       /reports/profit/window [get]
func (h *ReportHandler) ProfitWindow(c *gin.Context) {
	var filter reportapp.ProfitWindowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	statement, err := h.reportService.ProfitWindow(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, statement)
}

// Inventory godoc
// @ID           getInventoryReport
// @Summary      Inventory listing
// @Tags         reports
// @Produce      json
// @Param        search      query string false "Search by product name or code"
// @Param        category_id query string false "Category ID" format(uuid)
// @Param        low_stock   query int    false "Only products with stock at or below this amount"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20) maximum(100)
// @Param        sort_by     query string false "Sort field" default(product_name)
// @Param        sort_desc   query bool   false "Sort descending"
// @Success      200 {object} APIResponse[[]report.InventoryItem]
// @Failure      400 {object} ErrorResponse
// @Router       /reports/inventory [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	var filter reportapp.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if !h.uuidQuery(c, "category_id", &filter.CategoryID) {
		return
	}

	items, total, err := h.reportService.Inventory(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	p, size := page(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, items, total, p, size)
}
