package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only product and category endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductDetailResponse is the product page payload.
type ProductDetailResponse struct {
	Product *entity.Product   `json:"product"`
	Related []*entity.Product `json:"related"`
	Reviews []*entity.Review  `json:"reviews"`
}

// CategoryProductsResponse is the category page payload.
type CategoryProductsResponse struct {
	Category *entity.Category  `json:"category"`
	Products []*entity.Product `json:"products"`
}

// ListProducts handles GET /products?search=&category=&min_price=&max_price=&sort=
// category may repeat or hold a comma separated list.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var (
		query      catalog.Query
		categories []string
		sort       string
		minPrice   string
		maxPrice   string
	)

	err := echo.QueryParamsBinder(c).
		String("search", &query.Search).
		Strings("category", &categories).
		String("sort", &sort).
		String("min_price", &minPrice).
		String("max_price", &maxPrice).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product query")
	}

	query.Categories = splitCategories(categories)
	query.Sort = catalog.SortOrder(sort)

	if query.MinPrice, err = parsePrice(minPrice); err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "min_price must be a number")
	}
	if query.MaxPrice, err = parsePrice(maxPrice); err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "max_price must be a number")
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilProducts(products), "")
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	detail, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews := detail.Reviews
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return response.Success(c, http.StatusOK, ProductDetailResponse{
		Product: detail.Product,
		Related: nonNilProducts(detail.Related),
		Reviews: reviews,
	}, "")
}

// FeaturedProducts handles GET /products/featured
func (h *CatalogHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.catalogUC.FeaturedProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilProducts(products), "")
}

// Categories handles GET /categories
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ProductsByCategory handles GET /categories/:slug/products
func (h *CatalogHandler) ProductsByCategory(c echo.Context) error {
	page, err := h.catalogUC.ProductsByCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CategoryProductsResponse{
		Category: page.Category,
		Products: nonNilProducts(page.Products),
	}, "")
}

func splitCategories(raw []string) []string {
	var out []string
	for _, value := range raw {
		for part := range strings.SplitSeq(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}

	return &price, nil
}

func nonNilProducts(products []*entity.Product) []*entity.Product {
	if products == nil {
		return []*entity.Product{}
	}

	return products
}
