package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentInput is the card form. Only the last four digits of CardNumber survive PlaceOrder.
type PaymentInput struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

// PlaceOrderInput defines the data submitted with the checkout form.
type PlaceOrderInput struct {
	UserID          *uuid.UUID
	Contact         entity.ContactInfo
	ShippingAddress entity.ShippingAddress
	Payment         PaymentInput
}

// ConfirmationViewer identifies who is asking for a confirmation.
type ConfirmationViewer struct {
	SessionID string
	UserID    *uuid.UUID
}

// CheckoutUsecase runs the simulated checkout.
type CheckoutUsecase interface {
	// Prefill returns the contact fields of userID, or an empty block for anonymous shoppers.
	Prefill(ctx context.Context, userID *uuid.UUID) (*entity.ContactInfo, error)
	PlaceOrder(ctx context.Context, sessionID string, input *PlaceOrderInput) (*entity.Order, error)
	// GetConfirmation returns the full order to its owner and a redacted copy to anyone else.
	GetConfirmation(ctx context.Context, orderID uuid.UUID, viewer ConfirmationViewer) (*entity.Order, error)
	// ConfirmationQR renders a PNG QR code linking to the confirmation.
	ConfirmationQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
