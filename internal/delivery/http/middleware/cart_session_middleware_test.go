package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartSessionMiddleware() *CartSessionMiddleware {
	cfg := &config.Config{}
	cfg.Cart.SessionCookie.Name = "cart_session"
	cfg.Cart.SessionCookie.MaxAge = 24 * time.Hour

	return NewCartSessionMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

// runCartSession runs the middleware and returns the session seen by the handler.
func runCartSession(t *testing.T, req *http.Request) (string, string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromCtx string
	handler := newCartSessionMiddleware().Process(func(c echo.Context) error {
		fromEcho = deliverycontext.GetCartSession(c)
		fromCtx = deliverycontext.GetCartSessionFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))

	return fromEcho, fromCtx, rec
}

func TestCartSessionMiddleware_Process_GeneratesWhenMissing(t *testing.T) {
	session, fromCtx, rec := runCartSession(t, httptest.NewRequest(http.MethodGet, "/cart", nil))

	_, err := uuid.Parse(session)
	require.NoError(t, err)
	assert.Equal(t, session, fromCtx)
	assert.Equal(t, session, rec.Header().Get(deliverycontext.HeaderXCartSession))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cart_session", cookies[0].Name)
	assert.Equal(t, session, cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCartSessionMiddleware_Process_HeaderWins(t *testing.T) {
	headerID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(deliverycontext.HeaderXCartSession, headerID)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: uuid.NewString()})

	session, _, _ := runCartSession(t, req)

	assert.Equal(t, headerID, session)
}

func TestCartSessionMiddleware_Process_FallsBackToCookie(t *testing.T) {
	cookieID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: cookieID})

	session, _, _ := runCartSession(t, req)

	assert.Equal(t, cookieID, session)
}

func TestCartSessionMiddleware_Process_RejectsNonUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(deliverycontext.HeaderXCartSession, "../../etc/passwd")

	session, _, _ := runCartSession(t, req)

	assert.NotEqual(t, "../../etc/passwd", session)
	_, err := uuid.Parse(session)
	assert.NoError(t, err)
}
