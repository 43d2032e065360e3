package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the cart state store. Every endpoint answers with the priced cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	Quantity        *int   `json:"quantity,omitempty"`
	SelectedVariant string `json:"selected_variant,omitempty"`
}

// UpdateQuantityRequest represents the request body for setting a line's quantity.
// Zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartLineResponse is one priced cart line. Product is null when the catalog no longer has it.
type CartLineResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	Quantity        int             `json:"quantity"`
	SelectedVariant string          `json:"selectedVariant,omitempty"`
	Product         *entity.Product `json:"product"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	LineSubtotal    decimal.Decimal `json:"lineSubtotal"`
	ExceedsStock    bool            `json:"exceedsStock"`
	Missing         bool            `json:"missing"`
}

// CartResponse is the priced cart.
type CartResponse struct {
	Items              []CartLineResponse `json:"items"`
	ItemCount          int                `json:"itemCount"`
	IsOpen             bool               `json:"isOpen"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	Shipping           decimal.Decimal    `json:"shipping"`
	Tax                decimal.Decimal    `json:"tax"`
	Total              decimal.Decimal    `json:"total"`
	HasMissingProducts bool               `json:"hasMissingProducts"`
}

func newCartResponse(view *usecase.CartView) CartResponse {
	priced := view.Priced
	items := make([]CartLineResponse, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		items = append(items, CartLineResponse{
			ID:              line.Item.ID,
			ProductID:       line.Item.ProductID,
			Quantity:        line.Item.Quantity,
			SelectedVariant: line.Item.SelectedVariant,
			Product:         line.Product,
			UnitPrice:       line.UnitPrice,
			LineSubtotal:    line.LineSubtotal,
			ExceedsStock:    line.ExceedsStock,
			Missing:         line.Missing(),
		})
	}

	return CartResponse{
		Items:              items,
		ItemCount:          priced.ItemCount,
		IsOpen:             priced.IsOpen,
		Subtotal:           priced.Subtotal,
		Shipping:           priced.Shipping,
		Tax:                priced.Tax,
		Total:              priced.Total,
		HasMissingProducts: priced.HasMissingProducts(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.Get(c.Request().Context(), sessionID)
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.AddItem(c.Request().Context(), sessionID, &usecase.AddItemInput{
			ProductID:       req.ProductID,
			Quantity:        quantity,
			SelectedVariant: req.SelectedVariant,
		})
	})
}

// UpdateQuantity handles PATCH /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.UpdateQuantity(c.Request().Context(), sessionID, c.Param("productId"), *req.Quantity)
	})
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.RemoveItem(c.Request().Context(), sessionID, c.Param("productId"))
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.Clear(c.Request().Context(), sessionID)
	})
}

// ToggleCart handles POST /cart/toggle
func (h *CartHandler) ToggleCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.Toggle(c.Request().Context(), sessionID)
	})
}

// OpenCart handles POST /cart/open
func (h *CartHandler) OpenCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.Open(c.Request().Context(), sessionID)
	})
}

// CloseCart handles POST /cart/close
func (h *CartHandler) CloseCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (*usecase.CartView, error) {
		return h.cartUC.Close(c.Request().Context(), sessionID)
	})
}

func (h *CartHandler) respond(c echo.Context, op func(sessionID string) (*usecase.CartView, error)) error {
	sessionID := deliverycontext.GetCartSession(c)
	if sessionID == "" {
		return response.BadRequest(c, "MISSING_CART_SESSION", "Cart session is missing")
	}

	view, err := op(sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(view), "")
}
