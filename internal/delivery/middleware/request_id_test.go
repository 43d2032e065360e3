package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (string, string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromCtx string
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		fromEcho = deliverycontext.GetRequestID(c)
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return fromEcho, fromCtx, rec
}

func TestRequestIDMiddleware_Process_KeepsClientID(t *testing.T) {
	fromEcho, fromCtx, rec := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", fromEcho)
	assert.Equal(t, "req-123", fromCtx)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_Process_GeneratesID(t *testing.T) {
	fromEcho, fromCtx, _ := runRequestID(t, "")

	assert.NotEmpty(t, fromEcho)
	assert.Equal(t, fromEcho, fromCtx)
}

func TestRequestIDMiddleware_Process_ReplacesOversizedID(t *testing.T) {
	oversized := strings.Repeat("x", maxRequestIDLength+1)

	fromEcho, _, _ := runRequestID(t, oversized)

	assert.NotEqual(t, oversized, fromEcho)
	assert.Len(t, fromEcho, 36)
}
