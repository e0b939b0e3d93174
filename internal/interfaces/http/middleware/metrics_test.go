package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biztime/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHTTPMetrics(t *testing.T) {
	m := metrics.New()

	router := gin.New()
	router.Use(HTTPMetrics(m))
	router.GET("/companies/:code", func(c *gin.Context) {
		if c.Param("code") == "nope" {
			SetErrorCode(c, "NOT_FOUND")
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "missing", "status": 404}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"company": gin.H{"code": c.Param("code")}})
	})

	for _, path := range []string{"/companies/apple", "/companies/ibm", "/companies/nope", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "biztime_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	body := scrape(t, m)
	assert.Contains(t, body, `biztime_http_requests_total{method="GET",route="/companies/:code",status="200"} 2`)
	assert.Contains(t, body, `biztime_http_requests_total{method="GET",route="/companies/:code",status="404"} 1`)
	assert.Contains(t, body, `biztime_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `biztime_api_errors_total{code="NOT_FOUND"} 1`)
	assert.Contains(t, body, `biztime_api_errors_total{code="404"} 1`)
	assert.Contains(t, body, `biztime_http_requests_in_flight 0`)
}

func TestHTTPMetrics_Nil(t *testing.T) {
	router := gin.New()
	router.Use(HTTPMetrics(nil))
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
