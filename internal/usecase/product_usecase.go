package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Brand           string
	Flavor          string
	NicotineContent string
	Category        string
	MinPrice        *int64
	MaxPrice        *int64
	Limit           int
	Offset          int
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Count int             `json:"count"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Limit < 0 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Offset < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}

	limit := in.Limit
	if limit == 0 {
		limit = 50
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Brand:           strings.TrimSpace(in.Brand),
		Flavor:          strings.TrimSpace(in.Flavor),
		NicotineContent: strings.TrimSpace(in.NicotineContent),
		Category:        strings.TrimSpace(in.Category),
		MinPrice:        in.MinPrice,
		MaxPrice:        in.MaxPrice,
		Limit:           limit,
		Offset:          in.Offset,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Count: len(items),
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

// 名前・説明の部分一致検索
func (u *ProductUsecase) SearchProducts(ctx context.Context, query string) (ProductListOutput, error) {
	q := strings.TrimSpace(query)
	if q == "" || len(q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	items, err := u.productRepo.Search(ctx, q)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: int64(len(items)),
		Count: len(items),
	}, nil
}

type PriceRange struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}

// 絞り込みUI用の選択肢
type FilterOptionsOutput struct {
	Brands          []string     `json:"brands"`
	Flavors         []string     `json:"flavors"`
	NicotineContent []string     `json:"nicotine_content"`
	Categories      []string     `json:"categories"`
	PriceRanges     []PriceRange `json:"price_ranges"`
}

// FilterOptions は静的な選択肢を返す（カタログと同期して保守する）。
func (u *ProductUsecase) FilterOptions() FilterOptionsOutput {
	return FilterOptionsOutput{
		Brands:  []string{"RELX", "ALIBARBAR", "IGET", "BIMO"},
		Flavors: []string{"Menthol", "Mint", "Strawberry", "Watermelon Ice", "Mixed Fruits", "Blueberry Raspberry", "Strawberry Watermelon", "Blackberry Dragon Fruit", "Strawberry Coconut Watermelon", "Strawberry Kiwi"},
		NicotineContent: []string{
			"0%", "2%", "3%", "5%", "12mg", "18mg", "20mg",
		},
		Categories: []string{"Pod Systems", "Disposables"},
		PriceRanges: []PriceRange{
			{Label: "Under $20", Min: 0, Max: 2000},
			{Label: "$20 - $50", Min: 2000, Max: 5000},
			{Label: "$50 - $100", Min: 5000, Max: 10000},
			{Label: "Over $100", Min: 10000, Max: 999999},
		},
	}
}
