package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/biztime/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// ErrorCodeKey is the gin context key under which handlers leave the
// domain error code of an error response
const ErrorCodeKey = "error_code"

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// SetErrorCode records the error code of the response being written
func SetErrorCode(c *gin.Context, code string) {
	c.Set(ErrorCodeKey, code)
}

// HTTPMetrics returns a gin middleware that records request count, latency,
// response size and in-flight requests on m. Error responses are also
// counted by error code; responses written outside the handlers (413, 500
// from recovery, 404 for unknown routes) fall back to the status code.
// A nil m disables collection.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		m.RequestStarted()

		c.Next()

		status := c.Writer.Status()
		m.RequestFinished(c.Request.Method, getRoutePattern(c), status, c.Writer.Size(), time.Since(start))

		if status >= http.StatusBadRequest {
			code := c.GetString(ErrorCodeKey)
			if code == "" {
				code = strconv.Itoa(status)
			}
			m.ErrorReturned(code)
		}
	}
}

// getRoutePattern returns the route pattern (e.g. "/invoices/:id") instead
// of the actual path to avoid high cardinality issues.
func getRoutePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}
