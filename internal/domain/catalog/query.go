// Package catalog holds the product listing rules: text search, category and price filters, and sort orders.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SortOrder names a listing order.
type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
	SortNewest    SortOrder = "newest"
	SortName      SortOrder = "name"
)

// RelatedLimit caps the related products shown next to a product.
const RelatedLimit = 4

// DefaultMaxPrice is the upper bound of the price filter when none is given.
var DefaultMaxPrice = decimal.NewFromInt(50000)

// IsValid reports whether s is a known sort order. The empty order is valid and means featured.
func (s SortOrder) IsValid() bool {
	switch s {
	case "", SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortName:
		return true
	default:
		return false
	}
}

// Query describes a product listing request.
type Query struct {
	Search     string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortOrder
}

// Apply filters and sorts products, returning a new slice. Sorting is stable so that
// ties keep catalog order; the featured order is the catalog order itself.
func Apply(products []*entity.Product, q Query) []*entity.Product {
	minPrice := decimal.Zero
	if q.MinPrice != nil {
		minPrice = *q.MinPrice
	}
	maxPrice := DefaultMaxPrice
	if q.MaxPrice != nil {
		maxPrice = *q.MaxPrice
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(q.Categories) > 0 && !slices.Contains(q.Categories, p.Category) {
			continue
		}
		if p.Price.LessThan(minPrice) || p.Price.GreaterThan(maxPrice) {
			continue
		}
		result = append(result, p)
	}

	if cmpFn := comparator(q.Sort); cmpFn != nil {
		slices.SortStableFunc(result, cmpFn)
	}

	return result
}

func matchesSearch(p *entity.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle) {
		return true
	}

	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

func comparator(order SortOrder) func(a, b *entity.Product) int {
	switch order {
	case SortPriceLow:
		return func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceHigh:
		return func(a, b *entity.Product) int { return b.Price.Cmp(a.Price) }
	case SortRating:
		return func(a, b *entity.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortNewest:
		return func(a, b *entity.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortName:
		return func(a, b *entity.Product) int {
			return cmp.Or(
				cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
				cmp.Compare(a.Name, b.Name),
			)
		}
	default:
		return nil
	}
}

// Related returns up to RelatedLimit products sharing product's category, excluding product itself.
func Related(products []*entity.Product, product *entity.Product) []*entity.Product {
	related := make([]*entity.Product, 0, RelatedLimit)
	for _, p := range products {
		if len(related) == RelatedLimit {
			break
		}
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		related = append(related, p)
	}

	return related
}
