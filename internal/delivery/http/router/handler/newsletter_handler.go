package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewsletterHandlerParams holds dependencies for NewsletterHandler, injected by Fx.
type NewsletterHandlerParams struct {
	fx.In

	NewsletterUC usecase.NewsletterUsecase
	Logger       *slog.Logger
}

// NewsletterHandler holds dependencies for newsletter handlers
type NewsletterHandler struct {
	newsletterUC usecase.NewsletterUsecase
	logger       *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler
func NewNewsletterHandler(params NewsletterHandlerParams) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUC: params.NewsletterUC,
		logger:       params.Logger,
	}
}

// SubscribeRequest represents the request body for a newsletter signup.
// The email is checked by the usecase so that an empty one gets its own error code.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse reports where the signup was stored.
type SubscribeResponse struct {
	Email         string `json:"email"`
	QueuedLocally bool   `json:"queued_locally"`
}

// FlushResponse reports how many queued signups reached the remote store.
type FlushResponse struct {
	Delivered int `json:"delivered"`
}

// Subscribe handles POST /newsletter
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter input")
	}

	out, err := h.newsletterUC.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SubscribeResponse{
		Email:         out.Email,
		QueuedLocally: out.QueuedLocally,
	}, "Subscribed to the newsletter")
}

// Flush handles POST /newsletter/flush, replaying the local queue on demand.
func (h *NewsletterHandler) Flush(c echo.Context) error {
	delivered, err := h.newsletterUC.Flush(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FlushResponse{Delivered: delivered}, "")
}
