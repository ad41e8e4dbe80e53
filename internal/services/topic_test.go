package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogbridge-backend/internal/data/repos/testutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

type fakeLLM struct {
	out    string
	err    error
	system string
	prompt string
	calls  int
}

func (f *fakeLLM) Complete(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system, f.prompt = system, prompt
	return f.out, f.err
}

func (f *fakeLLM) Model() string { return "fake" }

func TestBuildTopicPrompt(t *testing.T) {
	p := BuildTopicPrompt([]string{"python", "fastAPI", "router"})
	require.True(t, strings.HasPrefix(p, "Given the following keywords: [python, fastAPI, router], generate 3 blog topics"))
	require.Contains(t, p, `"points": ["Point 1", "Point 2", "Point 3"]`)
	require.True(t, strings.HasSuffix(p, "Do not add any extra text outside the JSON array."))
}

func TestSuggestTopics(t *testing.T) {
	client := &fakeLLM{out: "\n  [{\"topic\":\"Go\"}]  \n"}
	svc := NewTopicService(testutil.Logger(t), client)

	out, err := svc.SuggestTopics(context.Background(), []string{"go", "gin"})
	require.NoError(t, err)
	require.Equal(t, `[{"topic":"Go"}]`, out)
	require.Equal(t, 1, client.calls)
	require.Equal(t, topicSystemInstruction, client.system)
	require.Contains(t, client.prompt, "[go, gin]")
}

func TestSuggestTopicsEmptyAnswer(t *testing.T) {
	svc := NewTopicService(testutil.Logger(t), &fakeLLM{out: "   "})
	out, err := svc.SuggestTopics(context.Background(), []string{"go"})
	require.NoError(t, err)
	require.Equal(t, messages.NoInformation, out)
}

func TestSuggestTopicsProviderFailure(t *testing.T) {
	svc := NewTopicService(testutil.Logger(t), &fakeLLM{err: errors.New("connection reset")})
	_, err := svc.SuggestTopics(context.Background(), []string{"go"})
	requireAPIErr(t, err, http.StatusInternalServerError, messages.AnswerGenerationError)
}

func TestSuggestTopicsWithoutClient(t *testing.T) {
	svc := NewTopicService(testutil.Logger(t), nil)
	_, err := svc.SuggestTopics(context.Background(), []string{"go"})
	requireAPIErr(t, err, http.StatusInternalServerError, messages.ServerMisconfigured)
}
