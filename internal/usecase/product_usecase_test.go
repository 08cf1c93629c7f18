package usecase_test

import (
	"context"
	"testing"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"
	"vapestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProdRepoMock struct{ mock.Mock }

func (m *ProdRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdRepoMock) Search(ctx context.Context, query string) ([]model.Product, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

// =====================
// List / Detail
// =====================

func TestProductUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestProductUsecase_ListProducts_MinOverMax(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdRepoMock))

	lo, hi := int64(5000), int64(1000)
	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{MinPrice: &lo, MaxPrice: &hi})
	assertErrContains(t, err, "min_price must be <= max_price")
}

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	q := repo.ProductListQuery{Brand: "IGET", Limit: 50}
	items := []model.Product{{ID: 1, Name: "IGET Bar", Brand: "IGET", IsActive: true}}
	pRepo.On("List", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Brand: "IGET"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Count)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_NotFound_WhenInactive(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: false}, nil)

	_, err := uc.GetProductDetail(ctx, 1)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_GetProductDetail_NotFound_WhenRepoNotFound(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(ctx, 99)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

// =====================
// Search / FilterOptions
// =====================

func TestProductUsecase_SearchProducts_EmptyQuery(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdRepoMock))

	_, err := uc.SearchProducts(context.Background(), "   ")
	assertErrContains(t, err, "invalid query")
}

func TestProductUsecase_SearchProducts_Success(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("Search", mock.Anything, "mint").Return([]model.Product{
		{ID: 2, Name: "RELX Mint Pod", IsActive: true},
	}, nil)

	out, err := uc.SearchProducts(ctx, " mint ")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Count)
}

func TestProductUsecase_FilterOptions_KnownBrands(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdRepoMock))

	out := uc.FilterOptions()
	assert.Contains(t, out.Brands, "RELX")
	assert.Contains(t, out.Brands, "IGET")
	assert.NotEmpty(t, out.PriceRanges)
}
