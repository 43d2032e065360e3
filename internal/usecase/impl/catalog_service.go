package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context, query catalog.Query) ([]*entity.Product, error) {
	if !query.Sort.IsValid() {
		return nil, domainerrors.ErrInvalidSort.WithDetails("unknown sort order: " + string(query.Sort))
	}

	products, err := srv.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := catalog.Apply(products, query)
	srv.log(ctx).Debug("Listed products",
		slog.String("search", query.Search),
		slog.Any("categories", query.Categories),
		slog.String("sort", string(query.Sort)),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// GetProduct returns the product page. Reviews and related products never fail the lookup.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*usecase.ProductDetail, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("no product with id " + id)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	detail := &usecase.ProductDetail{
		Product: product,
		Related: []*entity.Product{},
		Reviews: []*entity.Review{},
	}

	if siblings, err := srv.catalogRepo.ListProductsByCategory(ctx, product.Category); err != nil {
		srv.log(ctx).Warn("Failed to load related products", slog.String("productID", id), slog.Any("error", err))
	} else {
		detail.Related = catalog.Related(siblings, product)
	}

	if reviews, err := srv.catalogRepo.ListReviewsByProductID(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to load reviews", slog.String("productID", id), slog.Any("error", err))
	} else {
		detail.Reviews = reviews
	}

	return detail, nil
}

func (srv *catalogService) FeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	featured := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	return featured, nil
}

func (srv *catalogService) ProductsByCategory(ctx context.Context, slug string) (*usecase.CategoryProducts, error) {
	category, err := srv.catalogRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WithDetails("no category with slug " + slug)
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	products, err := srv.catalogRepo.ListProductsByCategory(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return &usecase.CategoryProducts{Category: category, Products: products}, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
