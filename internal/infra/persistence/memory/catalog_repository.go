// Package memory serves the read-only catalog from a YAML seed held in memory.
package memory

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type catalogRepository struct {
	products   []*entity.Product
	byID       map[string]*entity.Product
	categories []*entity.Category
	reviews    []*entity.Review
}

// CatalogRepositoryParams holds dependencies for CatalogRepository, injected by Fx
type CatalogRepositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogRepository loads the catalog from catalog.seedPath, or the embedded seed when unset.
func NewCatalogRepository(params CatalogRepositoryParams) (repository.CatalogRepository, error) {
	data := embeddedSeed
	source := "embedded"
	if path := params.Config.Catalog.SeedPath; path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog seed %s", path)
		}
		data = raw
		source = path
	}

	repo, err := newCatalogRepository(data)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Catalog loaded",
		slog.String("source", source),
		slog.Int("products", len(repo.products)),
		slog.Int("categories", len(repo.categories)),
	)

	return repo, nil
}

func newCatalogRepository(data []byte) (*catalogRepository, error) {
	parsed, err := parseSeed(data)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Product, len(parsed.products))
	for _, product := range parsed.products {
		byID[product.ID] = product
	}

	return &catalogRepository{
		products:   parsed.products,
		byID:       byID,
		categories: parsed.categories,
		reviews:    parsed.reviews,
	}, nil
}

func (repo *catalogRepository) ListProducts(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, len(repo.products))
	copy(products, repo.products)

	return products, nil
}

func (repo *catalogRepository) FindProductByID(_ context.Context, id string) (*entity.Product, error) {
	product, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (repo *catalogRepository) Lookup(productID string) (*entity.Product, bool) {
	product, ok := repo.byID[productID]

	return product, ok
}

func (repo *catalogRepository) ListProductsByCategory(_ context.Context, slug string) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)
	for _, product := range repo.products {
		if product.Category == slug {
			products = append(products, product)
		}
	}

	return products, nil
}

func (repo *catalogRepository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, len(repo.categories))
	copy(categories, repo.categories)

	return categories, nil
}

func (repo *catalogRepository) FindCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, category := range repo.categories {
		if category.Slug == slug {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (repo *catalogRepository) ListReviewsByProductID(_ context.Context, productID string) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0)
	for _, review := range repo.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

// Module provides the in-memory catalog
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogRepository),
)
