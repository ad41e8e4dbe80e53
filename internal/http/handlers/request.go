package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
)

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

// currentUser is only valid behind RequireAuth.
func currentUser(c *gin.Context) *types.User {
	caller := ctxutil.CallerFrom(c.Request.Context())
	if caller == nil {
		return nil
	}
	return caller.User
}

func currentToken(c *gin.Context) string {
	caller := ctxutil.CallerFrom(c.Request.Context())
	if caller == nil {
		return ""
	}
	return caller.Token
}

func pathID(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fields := response.FieldErrors{}
		fields.Add(name, "value is not a valid integer")
		return 0, fields.Err()
	}
	if n == 0 {
		fields := response.FieldErrors{}
		fields.Add(name, "must be greater than 0")
		return 0, fields.Err()
	}
	return uint(n), nil
}
