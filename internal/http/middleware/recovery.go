package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

// Recovery turns panics into an enveloped 500.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("Recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		}
		response.RespondError(c, apierr.Internal("panic", messages.SomethingWentWrong, fmt.Errorf("panic: %v", recovered)))
	})
}
