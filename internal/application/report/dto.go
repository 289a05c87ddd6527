package report

import (
	"github.com/google/uuid"
)

// Profit window filters
const (
	FilterByHour      = "hour"
	FilterByDateRange = "date_range"

	DefaultHoursAgo = 1
	DateLayout      = "2006-01-02"
)

// ProfitRangeFilter selects a named range such as last_7_days
type ProfitRangeFilter struct {
	Range string `form:"range"`
}

// ProfitWindowFilter selects either a trailing number of hours or a date range.
// An empty FilterBy covers every order.
type ProfitWindowFilter struct {
	FilterBy  string `form:"filter_by" binding:"omitempty,oneof=hour date_range"`
	HoursAgo  int    `form:"hours_ago" binding:"omitempty,min=1,max=8760"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// InventoryFilter represents filter options for the inventory listing
type InventoryFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"-"` // parsed from the category_id query parameter
	LowStock   *int       `form:"low_stock" binding:"omitempty,min=0"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy     string     `form:"sort_by"`
	SortDesc   bool       `form:"sort_desc"`
}
