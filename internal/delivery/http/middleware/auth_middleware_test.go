package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWith(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var userID uuid.UUID
	var found bool
	handler := mw(func(c echo.Context) error {
		userID, found = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))

	return rec, userID, found
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"customer"}}, nil)

	rec, got, found := serveWith(t, m.Authenticate, "Bearer good")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, found)
	assert.Equal(t, userID, got)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec, _, found := serveWith(t, m.Authenticate, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	assert.False(t, found)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec, _, _ := serveWith(t, m.Authenticate, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))

	rec, _, found := serveWith(t, m.Authenticate, "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec, _, found := serveWith(t, m.OptionalAuthenticate, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidTokenPassesThrough(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateAccessToken("forged").Return(nil, errors.New("signature is invalid"))

	rec, _, found := serveWith(t, m.OptionalAuthenticate, "Bearer forged")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	e := echo.New()

	for _, tc := range []struct {
		name   string
		roles  []string
		status int
	}{
		{name: "admin", roles: []string{"admin"}, status: http.StatusNoContent},
		{name: "customer", roles: []string{"customer"}, status: http.StatusForbidden},
		{name: "anonymous", roles: nil, status: http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/newsletter/flush", nil), rec)
			if tc.roles != nil {
				deliverycontext.SetUserID(c, uuid.New(), tc.roles)
			}

			handler := m.RequireRole("admin")(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
