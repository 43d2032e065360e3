package pricing

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductLookup resolves a product by ID. A miss is reported with ok=false, never an error.
type ProductLookup interface {
	Lookup(productID string) (product *entity.Product, ok bool)
}

// LookupFunc adapts a function to ProductLookup.
type LookupFunc func(productID string) (*entity.Product, bool)

func (f LookupFunc) Lookup(productID string) (*entity.Product, bool) {
	return f(productID)
}

// PricedLine is a cart line joined with its product.
// Product is nil when the line references a product the catalog no longer has.
type PricedLine struct {
	Item         entity.CartLineItem
	Product      *entity.Product
	UnitPrice    decimal.Decimal
	LineSubtotal decimal.Decimal
	ExceedsStock bool
}

// Missing reports whether the line's product could not be resolved.
func (l PricedLine) Missing() bool {
	return l.Product == nil
}

// PricedCart is the read-side view of a snapshot. It is recomputed on every read and never stored.
type PricedCart struct {
	Lines     []PricedLine
	ItemCount int
	IsOpen    bool
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// HasMissingProducts reports whether any line failed to resolve.
func (c PricedCart) HasMissingProducts() bool {
	for _, line := range c.Lines {
		if line.Missing() {
			return true
		}
	}

	return false
}

// Project joins snapshot against the catalog and computes totals under policy.
func Project(snapshot entity.CartSnapshot, catalog ProductLookup, policy Policy) PricedCart {
	lines := make([]PricedLine, 0, len(snapshot.Items))
	subtotal := decimal.Zero

	for _, item := range snapshot.Items {
		line := PricedLine{
			Item:         item,
			UnitPrice:    decimal.Zero,
			LineSubtotal: decimal.Zero,
		}

		if product, ok := catalog.Lookup(item.ProductID); ok && product != nil {
			line.Product = product
			line.UnitPrice = product.Price
			line.LineSubtotal = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			line.ExceedsStock = item.Quantity > product.Stock
		}

		subtotal = subtotal.Add(line.LineSubtotal)
		lines = append(lines, line)
	}

	shipping := policy.Shipping(subtotal)
	tax := policy.Tax(subtotal)

	return PricedCart{
		Lines:     lines,
		ItemCount: snapshot.ItemCount(),
		IsOpen:    snapshot.IsOpen,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
	}
}
