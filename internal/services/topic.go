package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/yungbote/blogbridge-backend/internal/clients/llm"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

const topicSystemInstruction = "You are an expert blog content assistant. Your task is to generate blog topics and points based on user-provided keywords. You must always return valid JSON in the specified format, with no extra text."

const topicPromptTemplate = `Given the following keywords: [%s], generate 3 blog topics in a general blog style. Each topic should have exactly 3 points explaining what can be written about. All points should try to include the provided keywords where possible. Return strictly in this JSON format:

[
  {
    "topic": "Topic 1",
    "points": ["Point 1", "Point 2", "Point 3"]
  },
  {
    "topic": "Topic 2",
    "points": ["Point 1", "Point 2", "Point 3"]
  },
  {
    "topic": "Topic 3",
    "points": ["Point 1", "Point 2", "Point 3"]
  }
]

Do not add any extra text outside the JSON array.`

type TopicService interface {
	SuggestTopics(ctx context.Context, keywords []string) (string, error)
}

type topicService struct {
	log    *logger.Logger
	client llm.Client
}

// NewTopicService accepts a nil client; every call then fails as misconfigured.
func NewTopicService(log *logger.Logger, client llm.Client) TopicService {
	serviceLog := log.With("service", "TopicService")
	return &topicService{log: serviceLog, client: client}
}

func BuildTopicPrompt(keywords []string) string {
	return fmt.Sprintf(topicPromptTemplate, strings.Join(keywords, ", "))
}

func (ts *topicService) SuggestTopics(ctx context.Context, keywords []string) (string, error) {
	if ts.client == nil {
		ts.log.Error("Topic suggestion requested without GROQ_API_KEY")
		return "", apierr.WithMessage(http.StatusInternalServerError, "server_misconfigured", messages.ServerMisconfigured, llm.ErrNotConfigured)
	}
	out, err := ts.client.Complete(ctx, topicSystemInstruction, BuildTopicPrompt(keywords))
	if err != nil {
		return "", apierr.Internal("answer_generation_failed", messages.AnswerGenerationError, err)
	}
	answer := strings.TrimSpace(out)
	if answer == "" {
		return messages.NoInformation, nil
	}
	return answer, nil
}
