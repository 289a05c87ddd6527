package partner

import (
	"context"
	"strings"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

// CustomerService reads the customer directory built from sales orders
type CustomerService struct {
	directory partner.CustomerDirectory
	orderRepo trade.OrderRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(directory partner.CustomerDirectory, orderRepo trade.OrderRepository) *CustomerService {
	return &CustomerService{
		directory: directory,
		orderRepo: orderRepo,
	}
}

// List returns one entry per customer number
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]partner.Customer, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	domainFilter.OrderBy, domainFilter.OrderDir = sortFilter(filter.SortBy, filter.SortDesc, "customer_number", "asc")
	return s.directory.List(ctx, domainFilter)
}

// WithDue returns the customers that still owe money
func (s *CustomerService) WithDue(ctx context.Context) ([]partner.Customer, error) {
	return s.directory.WithDue(ctx)
}

// Due returns the outstanding balance of a customer
func (s *CustomerService) Due(ctx context.Context, number int) (*DueResponse, error) {
	if _, err := s.directory.FindByNumber(ctx, number); err != nil {
		return nil, err
	}
	total, err := s.orderRepo.CustomerDue(ctx, number)
	if err != nil {
		return nil, err
	}
	return &DueResponse{CustomerNumber: &number, TotalDue: total}, nil
}

// Details returns a customer with all of their orders
func (s *CustomerService) Details(ctx context.Context, lookup CustomerLookup) (*CustomerDetailsResponse, error) {
	var (
		customer *partner.Customer
		err      error
	)
	switch {
	case lookup.CustomerNumber > 0:
		customer, err = s.directory.FindByNumber(ctx, lookup.CustomerNumber)
	case strings.TrimSpace(lookup.Phone) != "":
		customer, err = s.directory.FindByPhone(ctx, strings.TrimSpace(lookup.Phone))
	default:
		return nil, shared.ErrInvalidInput.WithMessage("Customer number or phone is required")
	}
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByCustomer(ctx, customer.CustomerNumber)
	if err != nil {
		return nil, err
	}
	return &CustomerDetailsResponse{
		Customer: *customer,
		Orders:   toCustomerOrders(orders),
	}, nil
}
