package cart

import (
	"slices"

	"storefront/internal/domain/entity"
)

// Reduce applies intent to prev and returns the next snapshot.
// prev is never modified; the result never shares its Items backing array with prev.
func Reduce(prev entity.CartSnapshot, intent Intent) entity.CartSnapshot {
	switch in := intent.(type) {
	case AddItem:
		return addItem(prev, in)
	case RemoveItem:
		return removeItem(prev, in.ProductID)
	case UpdateQuantity:
		return updateQuantity(prev, in)
	case Clear:
		return entity.NewCartSnapshot()
	case CheckedOut:
		return checkedOut(prev, in.Items)
	case Toggle:
		next := prev.Clone()
		next.IsOpen = !prev.IsOpen

		return next
	case Open:
		next := prev.Clone()
		next.IsOpen = true

		return next
	case Close:
		next := prev.Clone()
		next.IsOpen = false

		return next
	default:
		return prev.Clone()
	}
}

// ReduceAll folds intents over prev in order.
func ReduceAll(prev entity.CartSnapshot, intents ...Intent) entity.CartSnapshot {
	next := prev.Clone()
	for _, intent := range intents {
		next = Reduce(next, intent)
	}

	return next
}

func addItem(prev entity.CartSnapshot, in AddItem) entity.CartSnapshot {
	next := prev.Clone()
	if in.Quantity <= 0 {
		return next
	}

	if i := next.IndexOf(in.ProductID); i >= 0 {
		next.Items[i].Quantity += in.Quantity

		return next
	}

	next.Items = append(next.Items, entity.CartLineItem{
		ID:              in.LineID,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		SelectedVariant: in.SelectedVariant,
	})

	return next
}

func removeItem(prev entity.CartSnapshot, productID string) entity.CartSnapshot {
	next := prev.Clone()
	next.Items = slices.DeleteFunc(next.Items, func(item entity.CartLineItem) bool {
		return item.ProductID == productID
	})

	return next
}

func updateQuantity(prev entity.CartSnapshot, in UpdateQuantity) entity.CartSnapshot {
	if in.Quantity <= 0 {
		return removeItem(prev, in.ProductID)
	}

	next := prev.Clone()
	if i := next.IndexOf(in.ProductID); i >= 0 {
		next.Items[i].Quantity = in.Quantity
	}

	return next
}

func checkedOut(prev entity.CartSnapshot, ordered []entity.CartLineItem) entity.CartSnapshot {
	next := prev.Clone()
	next.IsOpen = false

	for _, line := range ordered {
		if i := next.IndexOf(line.ProductID); i >= 0 {
			next.Items[i].Quantity -= line.Quantity
		}
	}

	next.Items = slices.DeleteFunc(next.Items, func(item entity.CartLineItem) bool {
		return item.Quantity <= 0
	})
	if len(next.Items) == 0 {
		return entity.NewCartSnapshot()
	}

	return next
}
