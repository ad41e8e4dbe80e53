package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/observability"
)

// Metrics records request count, latency and in-flight gauge per route
// template. Health checks and metric scrapes are left out. With nil metrics it
// is a pass-through.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if isOpsRoute(route) {
			c.Next()
			return
		}

		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		m.ObserveAPI(methodLabel(c.Request.Method), routeLabel(route), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

func isOpsRoute(route string) bool {
	return route == "/healthcheck" || route == "/metrics"
}

// routeLabel keeps unmatched paths out of label values so scanners cannot
// grow the series count.
func routeLabel(route string) string {
	if route == "" {
		return "unmatched"
	}
	return route
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	}
	return "OTHER"
}
