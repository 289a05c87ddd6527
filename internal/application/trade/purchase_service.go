package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/telemetry"
)

const unknownCategory = "N/A"

// PurchaseService records stock deliveries from suppliers
type PurchaseService struct {
	purchaseRepo   trade.PurchaseRepository
	productRepo    catalog.ProductRepository
	categoryRepo   catalog.CategoryRepository
	supplierRepo   partner.SupplierRepository
	txScope        TransactionScope
	clock          shared.Clock
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	purchaseRepo trade.PurchaseRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	supplierRepo partner.SupplierRepository,
	txScope TransactionScope,
	clock shared.Clock,
	logger *zap.Logger,
) *PurchaseService {
	if clock == nil {
		clock = shared.NewSystemClock(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		txScope:      txScope,
		clock:        clock,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PurchaseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordPurchase stores a purchase bill and adds the delivered quantity to stock
func (s *PurchaseService) RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (resp *PurchaseResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "purchase", "record",
		attribute.String("purchase.supplier_id", req.SupplierID.String()),
		attribute.Int("purchase.quantity", req.Quantity))
	defer func() { telemetry.EndSpan(span, err) }()

	date, err := s.purchaseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	var (
		purchase *trade.Purchase
		product  *catalog.Product
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err = repos.Products().FindByIDForUpdate(ctx, req.ProductID)
		if err != nil {
			return err
		}
		purchase, err = trade.NewPurchase(trade.PurchaseDetails{
			ProductID:     product.ID,
			SupplierID:    req.SupplierID,
			Quantity:      req.Quantity,
			PurchasePrice: req.PurchasePrice,
			Payment:       req.Payment,
			PurchaseDate:  date,
		})
		if err != nil {
			return err
		}
		if err := repos.Purchases().Create(ctx, purchase); err != nil {
			return err
		}
		if err := product.AddStock(purchase.Quantity); err != nil {
			return err
		}
		return repos.Products().Save(ctx, product)
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("failed to record purchase", zap.Error(err))
		}
		return nil, err
	}

	s.publish(ctx, purchase.GetDomainEvents())
	purchase.ClearDomainEvents()
	s.publish(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	s.logger.Info("purchase recorded",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("supplier_id", purchase.SupplierID.String()),
		zap.String("product_id", purchase.ProductID.String()),
		zap.Int("quantity", purchase.Quantity),
	)

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// purchaseDate parses the bill date, falling back to today
func (s *PurchaseService) purchaseDate(value string) (time.Time, error) {
	loc := s.clock.Now().Location()
	if value == "" {
		now := s.clock.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	date, err := time.ParseInLocation(PurchaseDateLayout, value, loc)
	if err != nil {
		return time.Time{}, shared.ErrInvalidInput.WithMessage("Purchase date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

// GetByID retrieves a purchase
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchases joined with product and supplier names
func (s *PurchaseService) List(ctx context.Context, filter PurchaseListFilter) ([]trade.PurchaseView, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.ProductID != nil {
		domainFilter.Filters["product_id"] = *filter.ProductID
	}
	if filter.HasDue != nil {
		domainFilter.Filters["has_due"] = *filter.HasDue
	}
	domainFilter.OrderBy, domainFilter.OrderDir = sortFilter(filter.SortBy, filter.SortDesc, "created_at", "desc")

	views, total, err := s.purchaseRepo.List(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	if views == nil {
		views = []trade.PurchaseView{}
	}
	return views, total, nil
}

// FormOptions lists the products and suppliers a purchase can reference
func (s *PurchaseService) FormOptions(ctx context.Context) (*PurchaseFormOptions, error) {
	all := shared.Filter{OrderBy: "name", OrderDir: "asc"}

	categories, err := s.categoryRepo.FindAll(ctx, all)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	products, err := s.productRepo.FindAll(ctx, shared.Filter{OrderBy: "product_name", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.FindAll(ctx, all)
	if err != nil {
		return nil, err
	}

	options := &PurchaseFormOptions{
		Products:  make([]ProductOption, 0, len(products)),
		Suppliers: make([]SupplierOption, 0, len(suppliers)),
	}
	for _, p := range products {
		categoryName, ok := names[p.CategoryID]
		if !ok {
			categoryName = unknownCategory
		}
		options.Products = append(options.Products, ProductOption{
			ID:           p.ID,
			Name:         p.Name,
			Code:         p.Code,
			CategoryID:   p.CategoryID,
			CategoryName: categoryName,
			BuyingPrice:  p.BuyingPrice,
		})
	}
	for _, sup := range suppliers {
		options.Suppliers = append(options.Suppliers, SupplierOption{ID: sup.ID, Name: sup.Name})
	}
	return options, nil
}

// ProductPurchaseInfo prefills the purchase form with a product's category and cost
func (s *PurchaseService) ProductPurchaseInfo(ctx context.Context, productID uuid.UUID) (*ProductPurchaseInfo, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	categoryName := unknownCategory
	category, err := s.categoryRepo.FindByID(ctx, product.CategoryID)
	switch {
	case err == nil:
		categoryName = category.Name
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	return &ProductPurchaseInfo{
		ProductID:    product.ID,
		ProductName:  product.Name,
		CategoryName: categoryName,
		BuyingPrice:  product.BuyingPrice,
		StockAmount:  product.StockAmount,
	}, nil
}

func (s *PurchaseService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish purchase events", zap.Error(err))
	}
}
