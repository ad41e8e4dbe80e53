package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	maxCorrelationID = 128
)

// AttachTraceContext gives every request a request id and a trace id, echoes
// both as response headers and stores them as the request's ctxutil.Trace.
// A client-supplied request id is honoured when it is short printable ASCII.
// The trace id comes from the active otel span, then X-Trace-Id, and falls
// back to the request id.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := correlationID(c.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.NewString()
		}

		var traceID string
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		} else if traceID = correlationID(c.GetHeader(headerTraceID)); traceID == "" {
			traceID = reqID
		}

		c.Request = c.Request.WithContext(ctxutil.WithTrace(c.Request.Context(), &ctxutil.Trace{
			TraceID:   traceID,
			RequestID: reqID,
		}))
		h := c.Writer.Header()
		h.Set(headerTraceID, traceID)
		h.Set(headerRequestID, reqID)
		c.Next()
	}
}

// correlationID returns raw trimmed, or "" when it is unsafe to echo into
// headers and logs.
func correlationID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxCorrelationID {
		return ""
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < 0x21 || raw[i] > 0x7e {
			return ""
		}
	}
	return raw
}
