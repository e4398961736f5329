// Package llm wraps the hosted text-generation collaborator behind a small
// prompt-in, text-out interface and recovers structured records from its
// free-form output.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds the per-call retry loop.
const DefaultMaxAttempts = 3

// Sampling parameters are fixed: low temperature keeps the JSON-shaped
// answers consistent enough for extraction.
const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 3000
)

// errEmptyResponse marks a syntactically successful completion with no
// usable text. It is retried like a transient failure.
var errEmptyResponse = errors.New("model returned empty response")

// Caller is the prompt/response contract stage agents depend on.
type Caller interface {
	Call(ctx context.Context, prompt, system string, maxAttempts int) (string, error)
}

// Client implements Caller on top of the OpenAI chat completions API.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger

	// retryDelay is overridable in tests.
	retryDelay time.Duration
}

// NewClient builds a Client for the given API key and model id.
func NewClient(apiKey, model string, logger *zap.Logger) *Client {
	return &Client{
		client:     openai.NewClient(apiKey),
		model:      model,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Call sends the system instruction and prompt as one chat completion and
// returns the model text. It retries up to maxAttempts; the terminal error is
// classified into a human-readable category and returned, never panicked.
// Callers are expected to absorb failure into a fallback record.
func (c *Client) Call(ctx context.Context, prompt, system string, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: prompt,
	})

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		})
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				err = errEmptyResponse
			} else {
				return strings.TrimSpace(resp.Choices[0].Message.Content), nil
			}
		}

		lastErr = err
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			break
		}
		// Auth and request errors will not heal between attempts; only
		// transient failures and empty answers are worth another try.
		if !errors.Is(err, errEmptyResponse) && !IsTransient(err) {
			break
		}
		if attempt < maxAttempts {
			c.logger.Warn("model call failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", maxAttempts),
				zap.Error(err))
			time.Sleep(c.retryDelay)
		}
	}

	category := ClassifyError(lastErr)
	c.logger.Error("model call failed after all attempts",
		zap.String("category", category),
		zap.Error(lastErr))
	return "", fmt.Errorf("%s: %w", category, lastErr)
}

// ClassifyError maps an upstream error onto a human-readable category by
// inspecting its message, the way diagnostics are reported to the caller.
func ClassifyError(err error) string {
	if err == nil {
		return "api call failed"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return "rate limit exceeded"
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "incorrect api key") || strings.Contains(msg, "401"):
		return "api key rejected"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "connection") ||
		strings.Contains(msg, "deadline exceeded"):
		return "connection problem"
	default:
		return "api call failed"
	}
}

// IsTransient reports whether an upstream error looks worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "500 internal server error") ||
		strings.Contains(msg, "502 bad gateway") ||
		strings.Contains(msg, "503 service unavailable") ||
		strings.Contains(msg, "504 gateway timeout") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset by peer") {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	return false
}
