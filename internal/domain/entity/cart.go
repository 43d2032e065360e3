package entity

// CartLineItem is one (product reference, quantity) pair in the cart.
// Quantity is always positive in a stored snapshot.
type CartLineItem struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	SelectedVariant string `json:"selectedVariant,omitempty"`
}

// CartSnapshot is the complete cart state at one instant.
// Items are unique by ProductID. A snapshot is treated as an immutable value:
// transitions build a new one instead of mutating the receiver.
type CartSnapshot struct {
	Items  []CartLineItem `json:"items"`
	IsOpen bool           `json:"isOpen"`
}

// NewCartSnapshot returns the empty initial cart.
func NewCartSnapshot() CartSnapshot {
	return CartSnapshot{Items: []CartLineItem{}}
}

// ItemCount is the sum of all line quantities. It is derived on every read.
func (s CartSnapshot) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}

	return count
}

// IndexOf returns the position of the line for productID, or -1.
func (s CartSnapshot) IndexOf(productID string) int {
	for i, item := range s.Items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

// Line returns the line for productID if present.
func (s CartSnapshot) Line(productID string) (CartLineItem, bool) {
	if i := s.IndexOf(productID); i >= 0 {
		return s.Items[i], true
	}

	return CartLineItem{}, false
}

// IsEmpty reports whether the cart holds no lines.
func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Clone returns a copy whose Items slice does not alias the receiver's.
func (s CartSnapshot) Clone() CartSnapshot {
	items := make([]CartLineItem, len(s.Items))
	copy(items, s.Items)

	return CartSnapshot{Items: items, IsOpen: s.IsOpen}
}
