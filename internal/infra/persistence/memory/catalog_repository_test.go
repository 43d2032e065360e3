package memory

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/repository"
)

func newEmbeddedCatalog(t *testing.T) repository.CatalogRepository {
	t.Helper()
	repo, err := NewCatalogRepository(CatalogRepositoryParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return repo
}

func TestCatalogRepository_EmbeddedSeed(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "1", products[0].ID)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Len(t, categories[0].Subcategories, 3)
	assert.Equal(t, "Headphones, speakers, and audio equipment", categories[0].Subcategories[0].Description)
}

func TestCatalogRepository_FindProductByID(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	product, err := repo.FindProductByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Bluetooth Headphones", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(16999)))
	require.NotNil(t, product.OriginalPrice)
	assert.True(t, product.OriginalPrice.Equal(decimal.NewFromInt(20999)))
	assert.Equal(t, 25, product.Stock)
	assert.Equal(t, "40mm", product.Specifications["Driver Size"])
	assert.Equal(t, 2024, product.CreatedAt.Year())

	watch, err := repo.FindProductByID(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, watch.OriginalPrice)

	_, err = repo.FindProductByID(ctx, "999")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_Lookup(t *testing.T) {
	repo := newEmbeddedCatalog(t)

	product, ok := repo.Lookup("6")
	require.True(t, ok)
	assert.Equal(t, "Professional Coffee Maker", product.Name)

	_, ok = repo.Lookup("gone")
	assert.False(t, ok)
}

func TestCatalogRepository_ListProductsByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	electronics, err := repo.ListProductsByCategory(ctx, "electronics")
	require.NoError(t, err)
	require.Len(t, electronics, 2)
	assert.Equal(t, "1", electronics[0].ID)
	assert.Equal(t, "2", electronics[1].ID)

	none, err := repo.ListProductsByCategory(ctx, "garden")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_FindCategoryBySlug(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	category, err := repo.FindCategoryBySlug(ctx, "furniture")
	require.NoError(t, err)
	assert.Equal(t, "Furniture", category.Name)

	_, err = repo.FindCategoryBySlug(ctx, "garden")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCatalogRepository_ListReviewsByProductID(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	reviews, err := repo.ListReviewsByProductID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Amazing sound quality!", reviews[0].Title)

	reviews, err = repo.ListReviewsByProductID(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestCatalogRepository_ListProducts_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newEmbeddedCatalog(t)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	products[0] = nil

	again, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

func TestNewCatalogRepository_SeedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	seed := `
products:
  - id: "a"
    name: Test Mug
    price: "12.50"
    category: lifestyle
    stock: 3
categories:
  - id: "1"
    name: Lifestyle
    slug: lifestyle
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := &config.Config{}
	cfg.Catalog.SeedPath = path
	repo, err := NewCatalogRepository(CatalogRepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	product, ok := repo.Lookup("a")
	require.True(t, ok)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.5")))
	assert.NotNil(t, product.Images)
}

func TestNewCatalogRepository_SeedPathMissing(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewCatalogRepository(CatalogRepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{"not yaml", "products: [\n"},
		{"missing price", "products:\n  - id: \"a\"\n    name: Mug\n    category: x\n"},
		{"non numeric price", "products:\n  - id: \"a\"\n    name: Mug\n    price: free\n    category: x\n"},
		{"negative stock", "products:\n  - id: \"a\"\n    name: Mug\n    price: \"1\"\n    category: x\n    stock: -1\n"},
		{"duplicate id", "products:\n  - id: \"a\"\n    name: Mug\n    price: \"1\"\n    category: x\n  - id: \"a\"\n    name: Cup\n    price: \"2\"\n    category: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSeed([]byte(tt.seed))
			assert.Error(t, err)
		})
	}
}
