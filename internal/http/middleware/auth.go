package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// RequireAuth admits only requests carrying a valid, unrevoked access token
// for an active user, and attaches that user as the request's Caller.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.RespondError(c, apierr.Unauthorized("missing_token", messages.AuthHeaderInvalid))
			return
		}
		user, err := am.authService.Authenticate(dbctx.Context{Ctx: c.Request.Context()}, tokenString)
		if err != nil {
			if _, ok := apierr.As(err); !ok {
				am.log.Error("Authentication lookup failed", "error", err)
			}
			response.RespondError(c, err)
			return
		}
		ctx := ctxutil.WithCaller(c.Request.Context(), &ctxutil.Caller{
			UserID: user.ID,
			User:   user,
			Token:  tokenString,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

func BearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
