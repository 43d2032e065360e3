package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves checkout and order confirmations.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// ContactRequest is the contact block of the checkout form.
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// ShippingAddressRequest is the shipping block of the checkout form.
type ShippingAddressRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// PaymentRequest is the card block of the checkout form.
type PaymentRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	NameOnCard string `json:"name_on_card" validate:"required"`
}

// PlaceOrderRequest represents the request body for POST /checkout
type PlaceOrderRequest struct {
	Contact         ContactRequest         `json:"contact"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	Payment         PaymentRequest         `json:"payment"`
}

// Prefill handles GET /checkout/prefill. Anonymous shoppers get an empty contact block.
func (h *CheckoutHandler) Prefill(c echo.Context) error {
	var userID *uuid.UUID
	if id, ok := deliverycontext.GetUserID(c); ok {
		userID = &id
	}

	contact, err := h.checkoutUC.Prefill(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact, "")
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	sessionID := deliverycontext.GetCartSession(c)
	if sessionID == "" {
		return response.BadRequest(c, "MISSING_CART_SESSION", "Cart session is missing")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.PlaceOrderInput{
		Contact: entity.ContactInfo{
			FirstName: req.Contact.FirstName,
			LastName:  req.Contact.LastName,
			Email:     req.Contact.Email,
			Phone:     req.Contact.Phone,
		},
		ShippingAddress: entity.ShippingAddress{
			Address: req.ShippingAddress.Address,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		Payment: usecase.PaymentInput{
			CardNumber: req.Payment.CardNumber,
			ExpiryDate: req.Payment.ExpiryDate,
			CVV:        req.Payment.CVV,
			NameOnCard: req.Payment.NameOnCard,
		},
	}
	if id, ok := deliverycontext.GetUserID(c); ok {
		input.UserID = &id
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), sessionID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetConfirmation handles GET /checkout/confirmations/:id.
// Contact and address details are only shown to the session or user that placed the order.
func (h *CheckoutHandler) GetConfirmation(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	viewer := usecase.ConfirmationViewer{SessionID: deliverycontext.GetCartSession(c)}
	if id, ok := deliverycontext.GetUserID(c); ok {
		viewer.UserID = &id
	}

	order, err := h.checkoutUC.GetConfirmation(c.Request().Context(), orderID, viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ConfirmationQR handles GET /checkout/confirmations/:id/qr and answers with a PNG.
func (h *CheckoutHandler) ConfirmationQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	png, err := h.checkoutUC.ConfirmationQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
