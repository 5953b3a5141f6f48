package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type ContextProvider interface {
	Context(ctx context.Context) (string, error)
}

type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type PromptResult struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

type PromptUsecase struct {
	context ContextProvider
	asker   Asker
	build   func(action, context string) string
	logger  *zap.Logger
}

func NewPromptUsecase(provider ContextProvider, asker Asker, build func(action, context string) string, logger *zap.Logger) *PromptUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromptUsecase{context: provider, asker: asker, build: build, logger: logger}
}

// Generate describes a user action to the model together with the current
// platform context.
func (u *PromptUsecase) Generate(ctx context.Context, action string) (PromptResult, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return PromptResult{}, ErrInvalidInput
	}

	platformCtx, err := u.context.Context(ctx)
	if err != nil {
		return PromptResult{}, err
	}
	prompt := u.build(action, platformCtx)

	resp, err := u.asker.Ask(ctx, prompt)
	if err != nil {
		u.logger.Error("prompt generation failed", zap.String("action", action), zap.Error(err))
		return PromptResult{}, err
	}
	return PromptResult{Prompt: prompt, Response: resp}, nil
}
