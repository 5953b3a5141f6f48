package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	openRouterURL          = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel = "openai/gpt-4o-mini"
)

type OpenRouter struct {
	http   *resty.Client
	apiKey string
	model  string
	url    string
	logger *zap.Logger
}

func NewOpenRouter(apiKey, model string, timeout time.Duration, logger *zap.Logger) *OpenRouter {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultOpenRouterModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenRouter{
		http:   resty.New().SetTimeout(timeout),
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
		url:    openRouterURL,
		logger: logger,
	}
}

// WithURL points the client at another OpenAI-compatible endpoint.
func (o *OpenRouter) WithURL(url string) *OpenRouter {
	o.url = url
	return o
}

func (o *OpenRouter) Name() string { return ProviderOpenRouter }

func (o *OpenRouter) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]map[string]string, 0, 2)
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	body := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	resp, err := o.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+o.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(o.url)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		o.logger.Warn("openrouter error response",
			zap.Int("status", resp.StatusCode()),
			zap.String("error", gjson.Get(resp.String(), "error.message").String()),
		)
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode())
	}

	text := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
