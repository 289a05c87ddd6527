package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	purchaseRepo trade.PurchaseRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, purchaseRepo trade.PurchaseRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	if err := s.ensureEmailFree(ctx, req.Email, nil); err != nil {
		return nil, err
	}
	supplier, err := partner.NewSupplier(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers, searching by name or email
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	domainFilter.OrderBy, domainFilter.OrderDir = sortFilter(filter.SortBy, filter.SortDesc, "created_at", "desc")

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
}

// Update replaces a supplier's details
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), supplier.EmailAddress()) {
		if err := s.ensureEmailFree(ctx, req.Email, &supplier.ID); err != nil {
			return nil, err
		}
	}
	if err := supplier.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete removes a supplier without purchases
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, id)
}

// Summary aggregates a supplier's purchase history
func (s *SupplierService) Summary(ctx context.Context, id uuid.UUID) (*partner.SupplierSummary, error) {
	return s.supplierRepo.Summary(ctx, id)
}

// Purchases lists the purchases of a supplier
func (s *SupplierService) Purchases(ctx context.Context, id uuid.UUID) ([]trade.PurchaseView, error) {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindBySupplier(ctx, id)
}

// Due returns what the shop still owes a supplier
func (s *SupplierService) Due(ctx context.Context, id uuid.UUID) (*DueResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.TotalDue(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DueResponse{SupplierID: &id, TotalDue: total}, nil
}

func (s *SupplierService) ensureEmailFree(ctx context.Context, email string, excludeID *uuid.UUID) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	taken, err := s.supplierRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return partner.ErrEmailTaken
	}
	return nil
}
