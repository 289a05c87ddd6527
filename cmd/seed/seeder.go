package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
)

// CategoryCreator creates categories
type CategoryCreator interface {
	Create(ctx context.Context, req catalogapp.CreateCategoryRequest) (*catalogapp.CategoryResponse, error)
}

// ProductCreator creates products
type ProductCreator interface {
	Create(ctx context.Context, req catalogapp.ProductRequest, image *catalogapp.ImageUpload) (*catalogapp.ProductResponse, error)
}

// SupplierCreator creates suppliers
type SupplierCreator interface {
	Create(ctx context.Context, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error)
}

// PurchaseRecorder records stock purchases
type PurchaseRecorder interface {
	RecordPurchase(ctx context.Context, req tradeapp.RecordPurchaseRequest) (*tradeapp.PurchaseResponse, error)
}

// OrderPlacer places sales orders
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req tradeapp.PlaceOrderRequest) (*tradeapp.OrderResponse, error)
}

// Services are the application services the seeder writes through, so every
// generated row passes the same rules as API traffic.
type Services struct {
	Categories CategoryCreator
	Products   ProductCreator
	Suppliers  SupplierCreator
	Purchases  PurchaseRecorder
	Orders     OrderPlacer
}

// Plan sets how many records of each kind to generate
type Plan struct {
	Categories int
	Products   int
	Suppliers  int
	Purchases  int
	Orders     int
	// PurchaseWindow spreads purchase dates over the days before today
	PurchaseWindow int
}

// Result counts what was written
type Result struct {
	Categories int
	Products   int
	Suppliers  int
	Purchases  int
	Orders     int
	Customers  int
}

type seededProduct struct {
	id          uuid.UUID
	price       decimal.Decimal
	buyingPrice decimal.Decimal
	stock       int
}

// Seeder fills the database with demo data
type Seeder struct {
	svc    Services
	faker  *gofakeit.Faker
	clock  shared.Clock
	logger *zap.Logger

	categories []uuid.UUID
	products   []*seededProduct
	suppliers  []uuid.UUID
	customers  []int
}

// NewSeeder creates a seeder. The same seed produces the same data set.
// Purchase dates are counted back from clock's today.
func NewSeeder(svc Services, clock shared.Clock, seed uint64, logger *zap.Logger) *Seeder {
	if clock == nil {
		clock = shared.NewSystemClock(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		svc:    svc,
		faker:  gofakeit.New(seed),
		clock:  clock,
		logger: logger,
	}
}

// Generate writes a random data set following plan
func (s *Seeder) Generate(ctx context.Context, plan Plan) (*Result, error) {
	res := &Result{}

	names := make(map[string]bool)
	for i := 0; i < plan.Categories; i++ {
		name := s.faker.ProductCategory()
		if names[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}
		names[name] = true
		if err := s.createCategory(ctx, name); err != nil {
			return res, err
		}
		res.Categories++
	}

	for i := 0; i < plan.Suppliers; i++ {
		req := partnerapp.SupplierRequest{
			Name:    s.faker.Company(),
			Address: s.faker.Address().Address,
			Phone:   s.faker.Phone(),
			Email:   s.faker.Email(),
		}
		if err := s.createSupplier(ctx, req); err != nil {
			return res, err
		}
		res.Suppliers++
	}

	if len(s.categories) == 0 && plan.Products > 0 {
		return res, fmt.Errorf("cannot generate products without categories")
	}
	for i := 0; i < plan.Products; i++ {
		buying := money(s.faker.Price(1, 200))
		markup := decimal.NewFromFloat(s.faker.Float64Range(1.1, 1.6))
		req := catalogapp.ProductRequest{
			CategoryID:  s.categories[s.faker.IntN(len(s.categories))],
			Name:        s.faker.ProductName(),
			Code:        fmt.Sprintf("SKU-%05d", i+1),
			Description: s.faker.ProductFeature(),
			Price:       buying.Mul(markup).Round(2),
			BuyingPrice: buying,
		}
		if err := s.createProduct(ctx, req); err != nil {
			return res, err
		}
		res.Products++
	}

	if plan.Purchases > 0 && (len(s.products) == 0 || len(s.suppliers) == 0) {
		return res, fmt.Errorf("cannot generate purchases without products and suppliers")
	}
	window := plan.PurchaseWindow
	if window <= 0 {
		window = 90
	}
	for i := 0; i < plan.Purchases; i++ {
		product := s.products[s.faker.IntN(len(s.products))]
		qty := s.faker.IntRange(5, 50)
		total := product.buyingPrice.Mul(decimal.NewFromInt(int64(qty)))
		req := tradeapp.RecordPurchaseRequest{
			ProductID:     product.id,
			SupplierID:    s.suppliers[s.faker.IntN(len(s.suppliers))],
			Quantity:      qty,
			PurchasePrice: product.buyingPrice,
			PurchaseDate:  s.clock.Now().AddDate(0, 0, -s.faker.IntN(window)).Format("2006-01-02"),
			Payment:       s.partialPayment(total),
		}
		if _, err := s.svc.Purchases.RecordPurchase(ctx, req); err != nil {
			return res, fmt.Errorf("recording purchase: %w", err)
		}
		product.stock += qty
		res.Purchases++
	}

	for i := 0; i < plan.Orders; i++ {
		placed, err := s.placeRandomOrder(ctx)
		if err != nil {
			return res, err
		}
		if !placed {
			s.logger.Info("Stock exhausted, stopping order generation", zap.Int("orders", res.Orders))
			break
		}
		res.Orders++
	}
	res.Customers = len(s.customers)

	return res, nil
}

// LoadCatalog writes a fixture: categories with their products, then suppliers
func (s *Seeder) LoadCatalog(ctx context.Context, c *Catalog) (*Result, error) {
	res := &Result{}
	for _, cat := range c.Categories {
		if err := s.createCategory(ctx, cat.Name); err != nil {
			return res, err
		}
		res.Categories++
		categoryID := s.categories[len(s.categories)-1]

		for _, p := range cat.Products {
			req := catalogapp.ProductRequest{
				CategoryID:  categoryID,
				Name:        p.Name,
				Code:        p.Code,
				Description: p.Description,
				Price:       p.Price,
				BuyingPrice: p.BuyingPrice,
				StockAmount: p.Stock,
			}
			if err := s.createProduct(ctx, req); err != nil {
				return res, err
			}
			res.Products++
		}
	}
	for _, sup := range c.Suppliers {
		req := partnerapp.SupplierRequest{
			Name:    sup.Name,
			Address: sup.Address,
			Phone:   sup.Phone,
			Email:   sup.Email,
		}
		if err := s.createSupplier(ctx, req); err != nil {
			return res, err
		}
		res.Suppliers++
	}
	return res, nil
}

func (s *Seeder) createCategory(ctx context.Context, name string) error {
	cat, err := s.svc.Categories.Create(ctx, catalogapp.CreateCategoryRequest{Name: name})
	if err != nil {
		return fmt.Errorf("creating category %q: %w", name, err)
	}
	s.categories = append(s.categories, cat.ID)
	return nil
}

func (s *Seeder) createProduct(ctx context.Context, req catalogapp.ProductRequest) error {
	p, err := s.svc.Products.Create(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("creating product %q: %w", req.Code, err)
	}
	s.products = append(s.products, &seededProduct{
		id:          p.ID,
		price:       p.Price,
		buyingPrice: p.BuyingPrice,
		stock:       p.StockAmount,
	})
	return nil
}

func (s *Seeder) createSupplier(ctx context.Context, req partnerapp.SupplierRequest) error {
	sup, err := s.svc.Suppliers.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("creating supplier %q: %w", req.Name, err)
	}
	s.suppliers = append(s.suppliers, sup.ID)
	return nil
}

// placeRandomOrder sells up to three in-stock products. It reports false when
// nothing is left to sell.
func (s *Seeder) placeRandomOrder(ctx context.Context) (bool, error) {
	var inStock []*seededProduct
	for _, p := range s.products {
		if p.stock > 0 {
			inStock = append(inStock, p)
		}
	}
	if len(inStock) == 0 {
		return false, nil
	}

	s.faker.ShuffleAnySlice(inStock)
	lines := inStock[:min(len(inStock), s.faker.IntRange(1, 3))]

	req := tradeapp.PlaceOrderRequest{}
	total := decimal.Zero
	for _, p := range lines {
		qty := s.faker.IntRange(1, min(p.stock, 3))
		req.Items = append(req.Items, tradeapp.OrderItemInput{ProductID: p.id, Quantity: qty})
		total = total.Add(p.price.Mul(decimal.NewFromInt(int64(qty))))
	}
	req.Paid = s.partialPayment(total)

	// Returning customers keep their number so dues accumulate per customer
	if len(s.customers) > 0 && s.faker.Bool() {
		number := s.customers[s.faker.IntN(len(s.customers))]
		req.CustomerNumber = &number
	} else {
		req.CustomerName = s.faker.Name()
		req.CustomerPhone = s.faker.Phone()
		req.CustomerAddress = s.faker.Address().Address
	}

	order, err := s.svc.Orders.PlaceOrder(ctx, req)
	if err != nil {
		return false, fmt.Errorf("placing order: %w", err)
	}

	for i, p := range lines {
		p.stock -= req.Items[i].Quantity
	}
	if req.CustomerNumber == nil {
		s.customers = append(s.customers, order.CustomerNumber)
	}
	return true, nil
}

// partialPayment pays all, part or none of total
func (s *Seeder) partialPayment(total decimal.Decimal) decimal.Decimal {
	switch s.faker.IntN(3) {
	case 0:
		return total
	case 1:
		return total.Mul(decimal.NewFromFloat(s.faker.Float64Range(0.1, 0.9))).Round(2)
	default:
		return decimal.Zero
	}
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
