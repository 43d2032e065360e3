package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	uc := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: newDiscardLogger()}), uc
}

func newHandlerTestProduct(id string, price int64) *entity.Product {
	return &entity.Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price), Category: "electronics", Stock: 5}
}

func TestCatalogHandler_ListProducts_ParsesQuery(t *testing.T) {
	h, uc := createTestCatalogHandler(t)
	minPrice := decimal.NewFromInt(100)
	maxPrice := decimal.RequireFromString("999.99")

	uc.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(q catalog.Query) bool {
			return q.Search == "headphones" &&
				assert.ObjectsAreEqual([]string{"electronics", "audio", "home"}, q.Categories) &&
				q.Sort == catalog.SortPriceLow &&
				q.MinPrice != nil && q.MinPrice.Equal(minPrice) &&
				q.MaxPrice != nil && q.MaxPrice.Equal(maxPrice)
		})).
		Return([]*entity.Product{newHandlerTestProduct("1", 199)}, nil)

	rec := serve(http.MethodGet, "/products",
		"/products?search=headphones&category=electronics,audio&category=home&sort=price-low&min_price=100&max_price=999.99",
		"", h.ListProducts)

	var products []*entity.Product
	env := decodeEnvelope(t, rec, &products)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestCatalogHandler_ListProducts_InvalidPrice(t *testing.T) {
	h, _ := createTestCatalogHandler(t)

	rec := serve(http.MethodGet, "/products", "/products?min_price=cheap", "", h.ListProducts)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PRICE", env.Error.Code)
}

func TestCatalogHandler_ListProducts_InvalidSort(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSort.WithDetails("cheapest"))

	rec := serve(http.MethodGet, "/products", "/products?sort=cheapest", "", h.ListProducts)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SORT", env.Error.Code)
	assert.Equal(t, "cheapest", env.Error.Details)
}

func TestCatalogHandler_ListProducts_EmptyIsArray(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, nil)

	rec := serve(http.MethodGet, "/products", "/products", "", h.ListProducts)

	env := decodeEnvelope(t, rec, nil)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestCatalogHandler_GetProduct_Success(t *testing.T) {
	h, uc := createTestCatalogHandler(t)
	product := newHandlerTestProduct("1", 199)

	uc.EXPECT().GetProduct(mock.Anything, "1").Return(&usecase.ProductDetail{
		Product: product,
		Related: []*entity.Product{newHandlerTestProduct("2", 99)},
	}, nil)

	rec := serve(http.MethodGet, "/products/:id", "/products/1", "", h.GetProduct)

	var detail ProductDetailResponse
	decodeEnvelope(t, rec, &detail)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", detail.Product.ID)
	require.Len(t, detail.Related, 1)
	assert.NotNil(t, detail.Reviews)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrProductNotFound)

	rec := serve(http.MethodGet, "/products/:id", "/products/missing", "", h.GetProduct)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestCatalogHandler_FeaturedProducts(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().FeaturedProducts(mock.Anything).Return([]*entity.Product{newHandlerTestProduct("1", 199)}, nil)

	rec := serve(http.MethodGet, "/products/featured", "/products/featured", "", h.FeaturedProducts)

	var products []*entity.Product
	decodeEnvelope(t, rec, &products)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, products, 1)
}

func TestCatalogHandler_Categories(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().Categories(mock.Anything).Return([]*entity.Category{{ID: "1", Slug: "electronics", Name: "Electronics"}}, nil)

	rec := serve(http.MethodGet, "/categories", "/categories", "", h.Categories)

	var categories []*entity.Category
	decodeEnvelope(t, rec, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "electronics", categories[0].Slug)
}

func TestCatalogHandler_ProductsByCategory_UnknownSlug(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().ProductsByCategory(mock.Anything, "toys").Return(nil, domainerrors.ErrCategoryNotFound)

	rec := serve(http.MethodGet, "/categories/:slug/products", "/categories/toys/products", "", h.ProductsByCategory)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", env.Error.Code)
}

func TestCatalogHandler_ProductsByCategory_Success(t *testing.T) {
	h, uc := createTestCatalogHandler(t)

	uc.EXPECT().ProductsByCategory(mock.Anything, "electronics").Return(&usecase.CategoryProducts{
		Category: &entity.Category{ID: "1", Slug: "electronics"},
		Products: []*entity.Product{newHandlerTestProduct("1", 199)},
	}, nil)

	rec := serve(http.MethodGet, "/categories/:slug/products", "/categories/electronics/products", "", h.ProductsByCategory)

	var page CategoryProductsResponse
	decodeEnvelope(t, rec, &page)
	assert.Equal(t, "electronics", page.Category.Slug)
	assert.Len(t, page.Products, 1)
}
