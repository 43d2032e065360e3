package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads order confirmation QR codes.
type QRCodeService interface {
	// GenerateOrderQR returns a PNG encoding a link to the order confirmation.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR extracts the order ID from QR payload data.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
