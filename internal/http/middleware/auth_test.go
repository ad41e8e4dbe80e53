package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type stubAuth struct {
	services.AuthService
	users map[string]*types.User
	err   error
}

func (s *stubAuth) Authenticate(_ dbctx.Context, token string) (*types.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, apierr.Unauthorized("invalid_token", messages.InvalidToken)
}

func newAuthRouter(t *testing.T, auth services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	require.NoError(t, err)

	r := gin.New()
	r.Use(Recovery(log))
	r.GET("/me", NewAuthMiddleware(log, auth).RequireAuth(), func(c *gin.Context) {
		caller := ctxutil.CallerFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID, "token": caller.Token})
	})
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(t, &stubAuth{users: map[string]*types.User{"good": {ID: 7}}})

	rr := get(r, "/me", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), messages.AuthHeaderInvalid)

	rr = get(r, "/me", "Basic Zm9vOmJhcg==")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = get(r, "/me", "Bearer nope")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), messages.InvalidToken)

	rr = get(r, "/me", "bearer good")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"user_id":7,"token":"good"}`, rr.Body.String())
}

func TestRequireAuthInternalFailure(t *testing.T) {
	r := newAuthRouter(t, &stubAuth{err: errors.New("db down")})
	rr := get(r, "/me", "Bearer good")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotContains(t, rr.Body.String(), "db down")
}

func TestRecoveryEnvelopesPanics(t *testing.T) {
	r := newAuthRouter(t, &stubAuth{})
	rr := get(r, "/panic", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"message":"`+messages.SomethingWentWrong+`","status":500,"results":{"detail":["`+messages.SomethingWentWrong+`"]}}`, rr.Body.String())
}
