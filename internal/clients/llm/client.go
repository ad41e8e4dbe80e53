// Package llm talks to an OpenAI-compatible chat completion endpoint (Groq by default).
package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

const (
	DefaultBaseURL   = "https://api.groq.com/openai/v1/"
	DefaultModel     = "llama-3.1-8b-instant"
	DefaultMaxTokens = 1024
)

var ErrNotConfigured = errors.New("llm api key not configured")

type Config struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	MaxTokens int64  `yaml:"max_tokens"`
}

type Client interface {
	// Complete sends one system+user exchange and returns the raw assistant text.
	Complete(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

type client struct {
	log       *logger.Logger
	oc        openai.Client
	model     string
	maxTokens int64
	metrics   *observability.Metrics
}

// NewClient fails with ErrNotConfigured when no API key is set. No request is
// ever made in that case.
func NewClient(log *logger.Logger, cfg Config, metrics *observability.Metrics) (Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &client{
		log: log.With("client", "LLMClient"),
		oc: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		),
		model:     model,
		maxTokens: maxTokens,
		metrics:   metrics,
	}, nil
}

func (c *client) Model() string { return c.model }

func (c *client) Complete(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.oc.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0),
		TopP:                openai.Float(1),
		MaxCompletionTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		c.metrics.ObserveLLMRequest(c.model, statusFromErr(err), time.Since(start), 0, 0)
		c.log.Warn("Chat completion failed", "model", c.model, "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	c.metrics.ObserveLLMRequest(c.model, "200", time.Since(start), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func statusFromErr(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
		return strconv.Itoa(apiErr.StatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "error"
}
