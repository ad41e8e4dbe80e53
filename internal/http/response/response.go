package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

// Envelope is the body shape of every response, success or failure.
type Envelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Results any    `json:"results"`
}

func RespondOK(c *gin.Context, status int, message string, results any) {
	if results == nil {
		results = gin.H{}
	}
	c.JSON(status, Envelope{Message: message, Status: status, Results: results})
}

// RespondError renders err and aborts the chain. Errors that are not
// *apierr.Error are reported as 500 without leaking their text.
func RespondError(c *gin.Context, err error) {
	ae, ok := apierr.As(err)
	if !ok {
		ae = apierr.Internal("internal_error", messages.SomethingWentWrong, err)
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, Envelope{
		Message: messages.SomethingWentWrong,
		Status:  status,
		Results: errorResults(ae),
	})
}

func errorResults(ae *apierr.Error) any {
	if len(ae.Fields) > 0 {
		return ae.Fields
	}
	detail := ae.Message
	if detail == "" {
		detail = messages.SomethingWentWrong
	}
	return map[string][]string{messages.NonFieldErrorKey: {detail}}
}
