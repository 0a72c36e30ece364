// Package completion wraps an OpenAI-compatible chat completions API for
// prompts that must answer with a single JSON object.
package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"aprova.app/config"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

// Request is one JSON-mode completion.
type Request struct {
	// APIKey overrides the configured key when set
	APIKey       string
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

type Completer interface {
	Complete(ctx context.Context, req Request) (*model.Completion, error)
}

// Client calls the completion API. A client per API key is built lazily
// because agencies may bring their own key.
type Client struct {
	baseURL      string
	apiKey       string
	defaultModel string
	httpClient   *http.Client
	logger       *slog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient sets the transport used for API calls.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

func NewClient(cfg config.AIConfig, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		defaultModel: cfg.DefaultModel,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Complete(ctx context.Context, req Request) (*model.Completion, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = c.apiKey
	}
	if apiKey == "" {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "AI API key not configured"}
	}
	modelName := req.Model
	if modelName == "" {
		modelName = c.defaultModel
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = strings.TrimSuffix(c.baseURL, "/")
	clientCfg.HTTPClient = c.httpClient
	api := openai.NewClientWithConfig(clientCfg)

	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		c.logger.Error("completion request failed", "model", modelName, "error", err)
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "completion returned no choices"}
	}

	content, err := ExtractJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("completion returned invalid JSON", "model", modelName, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "completion returned invalid JSON"}
	}

	usedModel := resp.Model
	if usedModel == "" {
		usedModel = modelName
	}
	cost := EstimateCost(usedModel, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	c.logger.Debug("completion succeeded",
		"model", usedModel,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"cost_usd", cost,
	)

	return &model.Completion{
		Content:    content,
		Model:      usedModel,
		TokensUsed: int32(resp.Usage.TotalTokens),
		CostUSD:    cost,
	}, nil
}

// classifyError maps API failures onto platform error codes.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := errs.Unavailable
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			code = errs.FailedPrecondition
		}
		return &errs.Error{
			Code:    code,
			Message: fmt.Sprintf("completion API error: %s", apiErr.Message),
			Details: errs.Details{"status_code": apiErr.HTTPStatusCode},
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &errs.Error{
			Code:    errs.Unavailable,
			Message: fmt.Sprintf("completion API error: HTTP %d", reqErr.HTTPStatusCode),
			Details: errs.Details{"status_code": reqErr.HTTPStatusCode},
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &errs.Error{Code: errs.Unavailable, Message: "completion request timed out"}
	}
	return &errs.Error{Code: errs.Unavailable, Message: "completion request failed"}
}

// ExtractJSONObject returns the JSON object in content, tolerating a
// surrounding markdown code fence. Anything else is an error.
func ExtractJSONObject(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	if !strings.HasPrefix(trimmed, "{") {
		return nil, errors.New("content is not a JSON object")
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, errors.New("content is not valid JSON")
	}
	return json.RawMessage(trimmed), nil
}
