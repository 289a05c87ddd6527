package trade

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/telemetry"
)

// OrderService places and reads sales orders
type OrderService struct {
	orderRepo      trade.OrderRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, txScope TransactionScope, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// PlaceOrder checks out a cart. Stock is taken from every product and the
// order is written in the same transaction, so a short line aborts the sale.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (resp *OrderResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "order", "place",
		attribute.Int("order.lines", len(req.Items)))
	defer func() { telemetry.EndSpan(span, err) }()

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one product")
	}

	var (
		order    *trade.Order
		products map[uuid.UUID]*catalog.Product
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := s.resolveCustomer(ctx, repos.Customers(), req)
		if err != nil {
			return err
		}

		products = make(map[uuid.UUID]*catalog.Product, len(req.Items))
		lines := make([]trade.OrderLine, 0, len(req.Items))
		for _, item := range req.Items {
			product, err := s.takeStock(ctx, repos.Products(), products, item)
			if err != nil {
				return err
			}
			price := product.Price
			if item.Price != nil {
				price = *item.Price
			}
			lines = append(lines, trade.OrderLine{
				ProductID:   product.ID,
				CategoryID:  product.CategoryID,
				ProductName: product.Name,
				ProductCode: product.Code,
				Quantity:    item.Quantity,
				Price:       price,
				BuyingPrice: product.BuyingPrice,
			})
		}

		for _, product := range products {
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}

		order, err = trade.NewOrder(customer, lines, req.Paid)
		if err != nil {
			return err
		}
		return repos.Orders().Create(ctx, order)
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("failed to place order", zap.Error(err))
		}
		return nil, err
	}

	for _, product := range products {
		s.publish(ctx, product.GetDomainEvents())
		product.ClearDomainEvents()
	}
	s.publish(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.Int("customer_number", order.CustomerNumber),
		zap.String("total", order.TotalPrice.StringFixed(2)),
		zap.String("due", order.DueAmount.StringFixed(2)),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// resolveCustomer reuses an existing customer number or allocates the next one
func (s *OrderService) resolveCustomer(ctx context.Context, customers partner.CustomerDirectory, req PlaceOrderRequest) (trade.CustomerInfo, error) {
	info := trade.CustomerInfo{
		Name:    strings.TrimSpace(req.CustomerName),
		Phone:   strings.TrimSpace(req.CustomerPhone),
		Address: req.CustomerAddress,
	}

	if req.CustomerNumber == nil {
		if info.Name == "" {
			return info, shared.ErrInvalidInput.WithMessage("Customer name is required for a new customer")
		}
		next, err := customers.NextNumber(ctx)
		if err != nil {
			return info, err
		}
		info.Number = next
		return info, nil
	}

	existing, err := customers.FindByNumber(ctx, *req.CustomerNumber)
	if err != nil {
		return info, err
	}
	info.Number = existing.CustomerNumber
	if info.Name == "" {
		info.Name = existing.CustomerName
	}
	if info.Phone == "" {
		info.Phone = existing.CustomerPhone
	}
	if info.Address == "" {
		info.Address = existing.CustomerAddress
	}
	return info, nil
}

// takeStock locks a product once per order and removes the line quantity from it
func (s *OrderService) takeStock(ctx context.Context, repo catalog.ProductRepository, loaded map[uuid.UUID]*catalog.Product, item OrderItemInput) (*catalog.Product, error) {
	product, ok := loaded[item.ProductID]
	if !ok {
		var err error
		product, err = repo.FindByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive() {
			return nil, shared.ErrInvalidState.WithMessage("Product " + product.Name + " is not available for sale")
		}
		loaded[item.ProductID] = product
	}
	if err := product.RemoveStock(item.Quantity); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves an order with its items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with search, filters and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CustomerNumber > 0 {
		domainFilter.Filters["customer_number"] = filter.CustomerNumber
	}
	if filter.HasDue != nil {
		domainFilter.Filters["has_due"] = *filter.HasDue
	}
	domainFilter.OrderBy, domainFilter.OrderDir = sortFilter(filter.SortBy, filter.SortDesc, "created_at", "desc")

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderResponses(orders), total, nil
}

func (s *OrderService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish order events", zap.Error(err))
	}
}

// isDomainError reports whether err carries a domain error code
func isDomainError(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr)
}
