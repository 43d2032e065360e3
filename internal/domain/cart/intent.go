// Package cart holds the cart state machine: intents and the pure reducer that applies them.
package cart

import "storefront/internal/domain/entity"

// Intent is a requested cart transition. The set is closed; Reduce is the only consumer.
type Intent interface {
	intentName() string
}

// AddItem increments the line for ProductID by Quantity, or appends a new line identified by LineID.
// LineID is generated by the caller so that the reducer has no hidden inputs.
type AddItem struct {
	LineID          string
	ProductID       string
	Quantity        int
	SelectedVariant string
}

// RemoveItem deletes the line for ProductID. Absent lines are ignored.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity overwrites the quantity of the line for ProductID.
// A quantity of zero or less removes the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear resets the cart to its initial state, closing the panel.
type Clear struct{}

// CheckedOut removes the quantities that were just ordered and closes the panel.
// Lines added or increased after Items was read keep the difference.
type CheckedOut struct {
	Items []entity.CartLineItem
}

// Toggle flips the panel visibility.
type Toggle struct{}

// Open shows the panel.
type Open struct{}

// Close hides the panel.
type Close struct{}

func (AddItem) intentName() string        { return "add_item" }
func (RemoveItem) intentName() string     { return "remove_item" }
func (UpdateQuantity) intentName() string { return "update_quantity" }
func (Clear) intentName() string          { return "clear_cart" }
func (CheckedOut) intentName() string     { return "checked_out" }
func (Toggle) intentName() string         { return "toggle_cart" }
func (Open) intentName() string           { return "open_cart" }
func (Close) intentName() string          { return "close_cart" }

// Name returns a stable label for logging.
func Name(intent Intent) string {
	if intent == nil {
		return "unknown"
	}

	return intent.intentName()
}
