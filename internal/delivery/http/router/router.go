// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	UserHandler       *handler.UserHandler
	NewsletterHandler *handler.NewsletterHandler

	AuthMiddleware        *middleware.AuthMiddleware
	CartSessionMiddleware *middleware.CartSessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	cartSession := r.params.CartSessionMiddleware.Process

	e.GET("/health", r.params.HealthHandler.Check)

	catalog := r.params.CatalogHandler
	productGroup := e.Group("/products")
	{
		productGroup.GET("", catalog.ListProducts)
		productGroup.GET("/featured", catalog.FeaturedProducts)
		productGroup.GET("/:id", catalog.GetProduct)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", catalog.Categories)
		categoryGroup.GET("/:slug/products", catalog.ProductsByCategory)
	}

	cart := r.params.CartHandler
	cartGroup := e.Group("/cart", cartSession)
	{
		cartGroup.GET("", cart.GetCart)
		cartGroup.DELETE("", cart.ClearCart)
		cartGroup.POST("/items", cart.AddItem)
		cartGroup.PATCH("/items/:productId", cart.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", cart.RemoveItem)
		cartGroup.POST("/toggle", cart.ToggleCart)
		cartGroup.POST("/open", cart.OpenCart)
		cartGroup.POST("/close", cart.CloseCart)
	}

	checkout := r.params.CheckoutHandler
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("/prefill", checkout.Prefill, auth.OptionalAuthenticate)
		checkoutGroup.POST("", checkout.PlaceOrder, cartSession, auth.OptionalAuthenticate)
		checkoutGroup.GET("/confirmations/:id", checkout.GetConfirmation, cartSession, auth.OptionalAuthenticate)
		checkoutGroup.GET("/confirmations/:id/qr", checkout.ConfirmationQR)
	}

	users := r.params.UserHandler
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", users.RegisterUser)
		authGroup.POST("/login", users.Login)
		authGroup.POST("/refresh", users.RefreshToken)
		authGroup.POST("/logout", users.Logout)
		authGroup.GET("/session", users.Session, auth.Authenticate)
	}

	newsletter := r.params.NewsletterHandler
	newsletterGroup := e.Group("/newsletter")
	{
		newsletterGroup.POST("", newsletter.Subscribe)
		newsletterGroup.POST("/flush", newsletter.Flush, auth.Authenticate, auth.RequireRole(entity.RoleAdmin.String()))
	}
}
