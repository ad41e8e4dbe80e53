package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

// RequestLogger writes one line per request once the handler chain is done.
// Server errors log at error, client errors at warn, health checks at debug.
// user_id is pseudonymised by the logger.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", routeLabel(route),
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, "blog_id", id)
		}
		if tr := ctxutil.TraceFrom(c.Request.Context()); tr != nil {
			fields = append(fields, "trace_id", tr.TraceID, "request_id", tr.RequestID)
		}
		if uid := ctxutil.UserID(c.Request.Context()); uid != 0 {
			fields = append(fields, "user_id", uid)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		case isOpsRoute(route):
			log.Debug("request served", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
