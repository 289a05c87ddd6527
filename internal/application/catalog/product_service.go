package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
)

// DefaultImageURLExpiry is how long a presigned image link stays valid
const DefaultImageURLExpiry = 15 * time.Minute

// ErrCodeTaken is returned when another product already uses the code
var ErrCodeTaken = shared.ErrAlreadyExists.WithMessage("The product code has already been taken.")

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	categoryRepo   catalog.CategoryRepository
	images         ImageStorage
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	urlExpiry      time.Duration
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	images ImageStorage,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		images:       images,
		logger:       logger,
		urlExpiry:    DefaultImageURLExpiry,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetImageURLExpiry overrides the presigned link lifetime
func (s *ProductService) SetImageURLExpiry(d time.Duration) {
	if d > 0 {
		s.urlExpiry = d
	}
}

// Create creates a product, uploading its image first when one is given
func (s *ProductService) Create(ctx context.Context, req ProductRequest, image *ImageUpload) (*ProductResponse, error) {
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	taken, err := s.productRepo.ExistsByCode(ctx, req.Code, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCodeTaken
	}

	product, err := catalog.NewProduct(req.details())
	if err != nil {
		return nil, err
	}

	uploaded, err := s.attachImage(ctx, product, image)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.discardImage(ctx, uploaded)
		return nil, err
	}

	s.publish(ctx, product)
	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with search, filters and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.InStock != nil {
		domainFilter.Filters["in_stock"] = *filter.InStock
	}
	domainFilter.OrderBy, domainFilter.OrderDir = sortFilter(filter.SortBy, filter.SortDesc, "created_at", "desc")

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// Update replaces a product's fields. A new image replaces the stored one,
// and the old object is removed once the product row is saved.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req ProductRequest, image *ImageUpload) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != product.CategoryID {
		if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.Code != product.Code {
		taken, err := s.productRepo.ExistsByCode(ctx, req.Code, &product.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCodeTaken
		}
	}

	if err := product.Update(req.details()); err != nil {
		return nil, err
	}

	previous := product.ImageKey
	uploaded, err := s.attachImage(ctx, product, image)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.discardImage(ctx, uploaded)
		return nil, err
	}
	if uploaded != "" {
		s.discardImage(ctx, previous)
	}

	s.publish(ctx, product)
	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product and its stored image
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.MarkDeleted()
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImage(ctx, product.ImageKey)
	s.publish(ctx, product)
	return nil
}

// AddStock increases the on-hand stock of a product
func (s *ProductService) AddStock(ctx context.Context, id uuid.UUID, req AddStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.AddStock(req.Stock); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)
	response := ToProductResponse(product)
	return &response, nil
}

// ImageURL returns a presigned download link for the product image
func (s *ProductService) ImageURL(ctx context.Context, id uuid.UUID) (*ImageURLResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.HasImage() {
		return nil, shared.ErrNotFound.WithMessage("Product has no image")
	}
	if s.images == nil {
		return nil, shared.ErrInvalidState.WithMessage("Image storage is not configured")
	}
	url, expiresAt, err := s.images.DownloadURL(ctx, product.ImageKey, s.urlExpiry)
	if err != nil {
		return nil, err
	}
	return &ImageURLResponse{URL: url, ExpiresAt: expiresAt}, nil
}

func (s *ProductService) ensureCategory(ctx context.Context, id uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("INVALID_CATEGORY", "The selected category is invalid.")
	}
	return nil
}

// attachImage uploads image and points the product at it. It returns the
// new key, or "" when there was nothing to upload.
func (s *ProductService) attachImage(ctx context.Context, product *catalog.Product, image *ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}
	ext, err := image.validate()
	if err != nil {
		return "", err
	}
	if s.images == nil {
		return "", shared.ErrInvalidState.WithMessage("Image storage is not configured")
	}
	key := imageKey(product.ID, ext)
	if err := s.images.Upload(ctx, key, image.Body, image.Size, image.ContentType); err != nil {
		return "", err
	}
	product.SetImage(key)
	return key, nil
}

// discardImage deletes an object, logging instead of returning failures
func (s *ProductService) discardImage(ctx context.Context, key string) {
	if key == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Warn("failed to delete product image",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *ProductService) publish(ctx context.Context, product *catalog.Product) {
	events := product.GetDomainEvents()
	product.ClearDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish product events", zap.Error(err))
	}
}
