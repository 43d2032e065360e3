// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when no category has the requested slug.
	ErrCategoryNotFound = errors.New("category not found")
)

// CatalogRepository is the read-only catalog collaborator.
type CatalogRepository interface {
	// ListProducts returns every product in catalog order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductByID returns ErrProductNotFound on a miss.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// Lookup is the synchronous, non-failing form of FindProductByID used by the pricing projector.
	Lookup(productID string) (*entity.Product, bool)

	// ListProductsByCategory returns the products whose category slug equals slug.
	ListProductsByCategory(ctx context.Context, slug string) ([]*entity.Product, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryBySlug returns ErrCategoryNotFound on a miss.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	ListReviewsByProductID(ctx context.Context, productID string) ([]*entity.Review, error)
}
