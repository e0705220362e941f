package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside")

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
}

func TestRequestIDMiddleware_IncomingID(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name  string
		id    string
		reuse bool
	}{
		{name: "well formed", id: "req-42.a_b", reuse: true},
		{name: "spaces", id: "bad id", reuse: false},
		{name: "newline", id: "x\ninjected", reuse: false},
		{name: "too long", id: string(bytes.Repeat([]byte("a"), maxRequestIDLength+1)), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.id)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.reuse, got == tt.id)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg, "/health").Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/contacts/:id", func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrContactNotFound)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contacts/9", nil))
	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"route":"/contacts/:id"`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{}).Handle)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, buf.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusOf(errors.WithStack(domainerrors.ErrForbidden)))
	assert.Equal(t, http.StatusNotFound, StatusOf(echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestNewIPExtractor(t *testing.T) {
	newRequest := func(remoteAddr, forwardedFor string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		req.Header.Set(echo.HeaderXRealIP, "192.0.2.99")

		return req
	}

	t.Run("direct peer without trusted proxies", func(t *testing.T) {
		extract, err := NewIPExtractor(nil)
		require.NoError(t, err)

		assert.Equal(t, "203.0.113.7", extract(newRequest("203.0.113.7:5000", "198.51.100.1")))
		assert.Equal(t, "127.0.0.1", extract(newRequest("127.0.0.1:5000", "198.51.100.1")))
	})

	t.Run("forwarded client behind trusted proxy", func(t *testing.T) {
		extract, err := NewIPExtractor([]string{"10.0.0.0/8"})
		require.NoError(t, err)

		assert.Equal(t, "198.51.100.1", extract(newRequest("10.1.2.3:443", "198.51.100.1")))
		assert.Equal(t, "198.51.100.1", extract(newRequest("10.1.2.3:443", "192.0.2.50, 198.51.100.1")))
	})

	t.Run("forwarded header from untrusted peer", func(t *testing.T) {
		extract, err := NewIPExtractor([]string{"10.0.0.0/8"})
		require.NoError(t, err)

		assert.Equal(t, "172.16.0.9", extract(newRequest("172.16.0.9:443", "198.51.100.1")))
	})

	t.Run("invalid cidr", func(t *testing.T) {
		_, err := NewIPExtractor([]string{"10.0.0.0/33"})
		assert.Error(t, err)
	})
}
