package middleware

import (
	"time"

	sharedmiddleware "contacts/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware feeds request counts and latencies to an HTTPRecorder.
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a metrics middleware backed by recorder.
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle records the route template rather than the raw path to keep label cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = sharedmiddleware.StatusOf(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
