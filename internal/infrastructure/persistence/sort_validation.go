package persistence

import (
	"strings"

	"github.com/shopledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField if it is whitelisted, otherwise defaultField
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CategorySortFields are the sortable category columns
var CategorySortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

// ProductSortFields are the sortable product columns
var ProductSortFields = map[string]bool{
	"id":           true,
	"product_name": true,
	"product_code": true,
	"price":        true,
	"buying_price": true,
	"stock_amount": true,
	"status":       true,
	"created_at":   true,
	"updated_at":   true,
}

// SupplierSortFields are the sortable supplier columns
var SupplierSortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// OrderSortFields are the sortable order columns
var OrderSortFields = map[string]bool{
	"id":              true,
	"customer_number": true,
	"customer_name":   true,
	"total_price":     true,
	"due_amount":      true,
	"created_at":      true,
}

// PurchaseSortFields are the sortable purchase columns
var PurchaseSortFields = map[string]bool{
	"purchase_date":   true,
	"total_amount":    true,
	"due_bill_amount": true,
	"created_at":      true,
}

// CustomerSortFields are the sortable columns of the derived customer list
var CustomerSortFields = map[string]bool{
	"customer_number": true,
	"customer_name":   true,
	"order_count":     true,
	"total_due":       true,
	"last_order_at":   true,
}

// orderBy applies a whitelisted ORDER BY. prefix qualifies the column for joined queries.
func orderBy(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultField, prefix string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowed, defaultField)
	return query.Order(prefix + field + " " + ValidateSortOrder(filter.OrderDir))
}
