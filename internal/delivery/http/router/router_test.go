package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	mockService "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRouter_RegisterRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Cart.SessionCookie.Name = "cart_session"

	r := NewRouter(RouterParams{
		HealthHandler:         handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
		CatalogHandler:        handler.NewCatalogHandler(handler.CatalogHandlerParams{Logger: logger}),
		CartHandler:           handler.NewCartHandler(handler.CartHandlerParams{Logger: logger}),
		CheckoutHandler:       handler.NewCheckoutHandler(handler.CheckoutHandlerParams{Logger: logger}),
		UserHandler:           handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		NewsletterHandler:     handler.NewNewsletterHandler(handler.NewsletterHandlerParams{Logger: logger}),
		AuthMiddleware:        middleware.NewAuthMiddleware(mockService.NewMockTokenService(t)),
		CartSessionMiddleware: middleware.NewCartSessionMiddleware(logger, cfg),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		http.MethodGet + " /health",
		http.MethodGet + " /products",
		http.MethodGet + " /products/featured",
		http.MethodGet + " /products/:id",
		http.MethodGet + " /categories",
		http.MethodGet + " /categories/:slug/products",
		http.MethodGet + " /cart",
		http.MethodDelete + " /cart",
		http.MethodPost + " /cart/items",
		http.MethodPatch + " /cart/items/:productId",
		http.MethodDelete + " /cart/items/:productId",
		http.MethodPost + " /cart/toggle",
		http.MethodPost + " /cart/open",
		http.MethodPost + " /cart/close",
		http.MethodGet + " /checkout/prefill",
		http.MethodPost + " /checkout",
		http.MethodGet + " /checkout/confirmations/:id",
		http.MethodGet + " /checkout/confirmations/:id/qr",
		http.MethodPost + " /auth/register",
		http.MethodPost + " /auth/login",
		http.MethodPost + " /auth/refresh",
		http.MethodPost + " /auth/logout",
		http.MethodGet + " /auth/session",
		http.MethodPost + " /newsletter",
		http.MethodPost + " /newsletter/flush",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}
