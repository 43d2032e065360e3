package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus mirrors the lifecycle labels shown to customers.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ContactInfo is the checkout contact block, optionally prefilled from the signed-in user.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// ShippingAddress is where a simulated order would be delivered.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem freezes the product data a line was priced with.
type OrderItem struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Image           string          `json:"image"`
	SelectedVariant string          `json:"selectedVariant,omitempty"`
}

// Order is the confirmation produced by a simulated checkout. Nothing downstream processes it.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          *uuid.UUID      `json:"userId,omitempty"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	Contact         ContactInfo     `json:"contact"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	// SessionID is the cart session that placed the order. It is never rendered.
	SessionID       string          `json:"-"`
}

// OwnedBy reports whether the cart session or the signed-in user placed the order.
func (o *Order) OwnedBy(sessionID string, userID *uuid.UUID) bool {
	if sessionID != "" && sessionID == o.SessionID {
		return true
	}

	return userID != nil && o.UserID != nil && *userID == *o.UserID
}

// Redacted returns a copy without the details that identify or locate the buyer.
func (o *Order) Redacted() *Order {
	redacted := *o
	redacted.UserID = nil
	redacted.SessionID = ""
	redacted.Items = append([]OrderItem(nil), o.Items...)
	redacted.Contact = ContactInfo{
		FirstName: o.Contact.FirstName,
		Email:     maskEmail(o.Contact.Email),
	}
	redacted.ShippingAddress = ShippingAddress{
		City:    o.ShippingAddress.City,
		State:   o.ShippingAddress.State,
		Country: o.ShippingAddress.Country,
	}

	return &redacted
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return ""
	}

	return local[:1] + "***@" + domain
}
