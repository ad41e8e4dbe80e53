package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/blogbridge-backend/internal/domain/user"
	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

func TestRequestLoggerFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(log))
	r.DELETE("/blogs/blog/:id", func(c *gin.Context) {
		c.Request = c.Request.WithContext(ctxutil.WithCaller(c.Request.Context(), &ctxutil.Caller{UserID: 3, User: &user.User{ID: 3}}))
		c.Status(http.StatusNotFound)
	})
	r.GET("/healthcheck", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodDelete, "/blogs/blog/42", nil)
	req.Header.Set("X-Request-Id", "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	rejected := entries[0]
	require.Equal(t, zapcore.WarnLevel, rejected.Level)
	require.Equal(t, "request rejected", rejected.Message)
	fields := rejected.ContextMap()
	require.Equal(t, "/blogs/blog/:id", fields["route"])
	require.Equal(t, "/blogs/blog/42", fields["path"])
	require.Equal(t, "42", fields["blog_id"])
	require.Equal(t, "req-7", fields["request_id"])
	require.EqualValues(t, 3, fields["user_id"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])

	health := entries[1]
	require.Equal(t, zapcore.DebugLevel, health.Level)
	require.NotContains(t, health.ContextMap(), "user_id")
	require.NotContains(t, health.ContextMap(), "blog_id")
}
