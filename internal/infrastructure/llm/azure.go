package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultAzureAPIVersion = "2024-08-01-preview"

// Azure talks to an Azure OpenAI chat deployment.
type Azure struct {
	client     *openai.Client
	deployment string
	timeout    time.Duration
}

func NewAzure(endpoint, apiKey, deployment, apiVersion string, timeout time.Duration) (*Azure, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	apiKey = strings.TrimSpace(apiKey)
	if endpoint == "" || apiKey == "" {
		return nil, errors.New("azure openai endpoint and api key are required")
	}
	if deployment = strings.TrimSpace(deployment); deployment == "" {
		deployment = "gpt-4o"
	}
	if apiVersion = strings.TrimSpace(apiVersion); apiVersion == "" {
		apiVersion = defaultAzureAPIVersion
	}

	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.APIVersion = apiVersion
	cfg.AzureModelMapperFunc = func(string) string { return deployment }

	return &Azure{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
		timeout:    timeout,
	}, nil
}

func (a *Azure) Name() string { return ProviderAzure }

func (a *Azure) Complete(ctx context.Context, req Request) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.deployment,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("azure chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
