package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogbridge-backend/internal/observability"
)

func scrape(t *testing.T, m *observability.Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewMetrics()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/blogs/blog/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/blogs/blog/1", "/blogs/blog/2", "/healthcheck", "/scan/wp-admin"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	req := httptest.NewRequest("PROPFIND", "/blogs/blog/1", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	body := scrape(t, m)
	require.Contains(t, body, `blogbridge_api_requests_total{method="GET",route="/blogs/blog/:id",status="204"} 2`)
	require.Contains(t, body, `route="unmatched"`)
	require.Contains(t, body, `method="OTHER"`)
	require.NotContains(t, body, "/healthcheck")
	require.NotContains(t, body, "wp-admin")
	require.Contains(t, body, "blogbridge_api_inflight_requests 0")
}

func TestMetricsNilIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestMethodLabel(t *testing.T) {
	require.Equal(t, http.MethodDelete, methodLabel(http.MethodDelete))
	require.Equal(t, "OTHER", methodLabel("BREW"))
}
