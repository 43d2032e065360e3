// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog entry. The catalog owns it; the cart only references its ID.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"originalPrice,omitempty"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Brand          string            `json:"brand"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Tags           []string          `json:"tags"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// PrimaryImage returns the first product image, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Category groups products; products reference it by Slug.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Review is a customer review attached to a product.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Helpful    int       `json:"helpful"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
}
