package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/config"

	"go.uber.org/zap"
)

const (
	ProviderAzure      = "azure"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"

	defaultTimeout = 30 * time.Second
)

var (
	ErrDisabled      = errors.New("llm provider not configured")
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// Request is a single-turn chat completion.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// New builds the client named by cfg.Provider. An empty provider yields ErrDisabled.
func New(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "":
		return nil, ErrDisabled
	case ProviderAzure:
		return NewAzure(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureDeployment, cfg.AzureAPIVersion, timeout)
	case ProviderGemini:
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, timeout)
	case ProviderOpenRouter:
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
