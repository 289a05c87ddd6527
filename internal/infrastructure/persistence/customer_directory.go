package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const customerColumns = `customer_number,
	MAX(customer_name) AS customer_name,
	MAX(customer_phone) AS customer_phone,
	MAX(customer_address) AS customer_address,
	COUNT(id) AS order_count,
	COALESCE(SUM(due_amount), 0) AS total_due,
	MAX(created_at) AS last_order_at`

type customerRow struct {
	CustomerNumber  int
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	OrderCount      int64
	TotalDue        decimal.Decimal
	LastOrderAt     time.Time
}

func (row customerRow) toCustomer() partner.Customer {
	return partner.Customer{
		CustomerNumber:  row.CustomerNumber,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerAddress: row.CustomerAddress,
		OrderCount:      row.OrderCount,
		TotalDue:        row.TotalDue.Round(2),
		LastOrderAt:     row.LastOrderAt,
	}
}

// GormCustomerDirectory derives customers from the orders table
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GormCustomerDirectory
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// List returns one entry per customer number
func (d *GormCustomerDirectory) List(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	base := d.filtered(d.db.WithContext(ctx).Model(&trade.Order{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("customer_number").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []customerRow
	query := base.Session(&gorm.Session{}).Select(customerColumns).Group("customer_number")
	query = paginate(orderBy(query, filter, CustomerSortFields, "customer_number", ""), filter)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toCustomers(rows), total, nil
}

// WithDue returns the customers that still owe money, largest debt first
func (d *GormCustomerDirectory) WithDue(ctx context.Context) ([]partner.Customer, error) {
	var rows []customerRow
	if err := d.db.WithContext(ctx).Model(&trade.Order{}).
		Select(customerColumns).
		Group("customer_number").
		Having("SUM(due_amount) > 0").
		Order("total_due DESC, customer_number ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// FindByNumber resolves a customer by number using the details of the latest order
func (d *GormCustomerDirectory) FindByNumber(ctx context.Context, number int) (*partner.Customer, error) {
	return d.find(ctx, "customer_number = ?", number)
}

// FindByPhone resolves a customer by phone using the details of the latest order
func (d *GormCustomerDirectory) FindByPhone(ctx context.Context, phone string) (*partner.Customer, error) {
	if phone == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Phone cannot be empty")
	}
	return d.find(ctx, "customer_phone = ?", phone)
}

func (d *GormCustomerDirectory) find(ctx context.Context, cond string, arg any) (*partner.Customer, error) {
	var latest trade.Order
	if err := d.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		First(&latest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound.WithMessage("Customer not found")
		}
		return nil, err
	}

	var agg struct {
		OrderCount int64
		TotalDue   decimal.Decimal
	}
	if err := d.db.WithContext(ctx).Model(&trade.Order{}).
		Select("COUNT(id) AS order_count, COALESCE(SUM(due_amount), 0) AS total_due").
		Where("customer_number = ?", latest.CustomerNumber).
		Scan(&agg).Error; err != nil {
		return nil, err
	}

	return &partner.Customer{
		CustomerNumber:  latest.CustomerNumber,
		CustomerName:    latest.CustomerName,
		CustomerPhone:   latest.CustomerPhone,
		CustomerAddress: latest.CustomerAddress,
		OrderCount:      agg.OrderCount,
		TotalDue:        agg.TotalDue.Round(2),
		LastOrderAt:     latest.CreatedAt,
	}, nil
}

// NextNumber returns the number a new customer should get
func (d *GormCustomerDirectory) NextNumber(ctx context.Context) (int, error) {
	var result struct {
		NextNumber int
	}
	if err := d.db.WithContext(ctx).Model(&trade.Order{}).
		Select("COALESCE(MAX(customer_number), 0) + 1 AS next_number").
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.NextNumber, nil
}

func (d *GormCustomerDirectory) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(customer_name) LIKE ? ESCAPE '\\' OR customer_phone LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	return query
}

func toCustomers(rows []customerRow) []partner.Customer {
	customers := make([]partner.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.toCustomer())
	}
	return customers
}

var _ partner.CustomerDirectory = (*GormCustomerDirectory)(nil)
