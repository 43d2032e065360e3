package usecase

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
)

// ProductDetail is a product page: the product, its related products and its reviews.
type ProductDetail struct {
	Product *entity.Product
	Related []*entity.Product
	Reviews []*entity.Review
}

// CategoryProducts is a category page.
type CategoryProducts struct {
	Category *entity.Category
	Products []*entity.Product
}

// CatalogUsecase answers read-only catalog queries.
type CatalogUsecase interface {
	// ListProducts returns ErrInvalidSort for an unknown sort order.
	ListProducts(ctx context.Context, query catalog.Query) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
	FeaturedProducts(ctx context.Context) ([]*entity.Product, error)
	ProductsByCategory(ctx context.Context, slug string) (*CategoryProducts, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
}
