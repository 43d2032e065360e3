package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyCartSession is the key for storing the cart session ID in context.
	KeyCartSession ContextKey = "cart_session"

	// KeyUserID is the key for storing the authenticated user ID in context.
	KeyUserID ContextKey = "user_id"

	// KeyUserRoles is the key for storing the authenticated user's roles in context.
	KeyUserRoles ContextKey = "user_roles"

	// HeaderXCartSession carries the cart session ID for clients that do not keep cookies.
	HeaderXCartSession = "X-Cart-Session"
)

// GetCartSession returns the cart session ID set by the cart session middleware, or "".
func GetCartSession(c echo.Context) string {
	if id, ok := c.Get(string(KeyCartSession)).(string); ok {
		return id
	}

	return ""
}

// SetCartSession stores the cart session ID in echo.Context.
func SetCartSession(c echo.Context, sessionID string) {
	c.Set(string(KeyCartSession), sessionID)
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok
}

// SetUserID stores the authenticated user ID and roles in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserRoles), roles)
}

// GetUserRoles returns the roles of the authenticated user.
func GetUserRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyUserRoles)).([]string)

	return roles
}

// WithCartSession returns a new context carrying the cart session ID.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, KeyCartSession, sessionID)
}

// GetCartSessionFromContext extracts the cart session ID from standard context.Context.
func GetCartSessionFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCartSession).(string); ok {
		return id
	}

	return ""
}
