package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and saves", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		categoryRepo.On("Save", ctx, mock.MatchedBy(func(c *catalog.Category) bool {
			return c.Name == "Beverages"
		})).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "  Beverages "})
		require.NoError(t, err)
		assert.Equal(t, "Beverages", resp.Name)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("blank name is rejected before saving", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockProductRepository))

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "   "})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, new(MockProductRepository))

	snacks, _ := catalog.NewCategory("Snacks")
	drinks, _ := catalog.NewCategory("Drinks")

	expectedFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 5 && f.Search == "s" && f.OrderBy == "name" && f.OrderDir == "asc"
	})
	categoryRepo.On("FindAll", ctx, expectedFilter).Return([]catalog.Category{*drinks, *snacks}, nil)
	categoryRepo.On("Count", ctx, expectedFilter).Return(int64(7), nil)

	items, total, err := service.List(ctx, CategoryListFilter{Search: "s", Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Drinks", items[0].Name)
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, new(MockProductRepository))

	category, _ := catalog.NewCategory("Old")
	categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	categoryRepo.On("Save", ctx, category).Return(nil)

	resp, err := service.Update(ctx, category.ID, UpdateCategoryRequest{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)

	missing := uuid.New()
	categoryRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
	_, err = service.Update(ctx, missing, UpdateCategoryRequest{Name: "New"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, new(MockProductRepository))

	id := uuid.New()
	categoryRepo.On("Delete", ctx, id).Return(shared.ErrInvalidState.WithMessage("Category still has products"))

	err := service.Delete(ctx, id)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestCategoryService_Products(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	service := NewCategoryService(categoryRepo, productRepo)

	categoryID := uuid.New()
	product, err := catalog.NewProduct(catalog.ProductDetails{
		CategoryID:  categoryID,
		Name:        "Cola",
		Code:        "COLA-1",
		Price:       decimal.NewFromInt(2),
		BuyingPrice: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	categoryRepo.On("ExistsByID", ctx, categoryID).Return(true, nil)
	productRepo.On("FindByCategory", ctx, categoryID).Return([]catalog.Product{*product}, nil)

	items, err := service.Products(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "COLA-1", items[0].Code)
	assert.True(t, items[0].Margin.Equal(decimal.NewFromInt(1)))

	unknown := uuid.New()
	categoryRepo.On("ExistsByID", ctx, unknown).Return(false, nil)
	_, err = service.Products(ctx, unknown)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
