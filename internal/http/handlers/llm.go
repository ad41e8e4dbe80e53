package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type LLMHandler struct {
	topicService services.TopicService
}

func NewLLMHandler(topicService services.TopicService) *LLMHandler {
	return &LLMHandler{topicService: topicService}
}

func (lh *LLMHandler) SuggestTopics(c *gin.Context) {
	var req struct {
		Topics []string `json:"topics" binding:"required,min=1,dive,notblank"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	answer, err := lh.topicService.SuggestTopics(c.Request.Context(), req.Topics)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordRetrieved, answer)
}
