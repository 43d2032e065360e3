package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartSessionMiddleware resolves the anonymous cart session of a request.
// The session comes from the X-Cart-Session header, then the session cookie;
// a fresh UUID is issued when neither holds a valid one. The ID is echoed back in both.
type CartSessionMiddleware struct {
	logger     *slog.Logger
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewCartSessionMiddleware creates the cart session middleware from the cart config.
func NewCartSessionMiddleware(logger *slog.Logger, cfg *config.Config) *CartSessionMiddleware {
	return &CartSessionMiddleware{
		logger:     logger,
		cookieName: cfg.Cart.SessionCookie.Name,
		maxAge:     cfg.Cart.SessionCookie.MaxAge,
		secure:     cfg.Cart.SessionCookie.Secure,
	}
}

// Process attaches the session to echo.Context, the request context and the request logger.
func (m *CartSessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := m.fromRequest(c)
		if !ok {
			sessionID = uuid.NewString()
		}

		deliverycontext.SetCartSession(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderXCartSession, sessionID)
		c.SetCookie(m.cookie(sessionID))

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("cart_session", sessionID))
		ctx = deliverycontext.WithCartSession(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *CartSessionMiddleware) fromRequest(c echo.Context) (string, bool) {
	if id, ok := normalizeSessionID(c.Request().Header.Get(deliverycontext.HeaderXCartSession)); ok {
		return id, true
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return normalizeSessionID(cookie.Value)
	}

	return "", false
}

func (m *CartSessionMiddleware) cookie(sessionID string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if m.maxAge > 0 {
		cookie.MaxAge = int(m.maxAge.Seconds())
	}

	return cookie
}

// normalizeSessionID accepts only UUIDs so client input never shapes storage keys.
func normalizeSessionID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}

	return id.String(), true
}
