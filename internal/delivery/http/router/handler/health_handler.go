package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// HealthHandler reports liveness together with the key-value store status.
type HealthHandler struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		store:  params.Store,
		logger: params.Logger,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	KV     string `json:"kv"`
}

// Check always answers 200 while the process is up. A failing store only degrades the kv field,
// since carts then fall back to empty instead of failing the page.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	body := HealthResponse{Status: "ok", KV: "ok"}
	if err := h.store.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Key-value store ping failed", slog.Any("error", err))
		body.KV = "unavailable"
	}

	return response.Success(c, http.StatusOK, body, "Service is healthy")
}
