package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/service/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticContext struct {
	text string
	err  error
}

func (s staticContext) Context(context.Context) (string, error) { return s.text, s.err }

type stubAsker struct {
	prompt string
	reply  string
	err    error
}

func (s *stubAsker) Ask(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestPromptUsecase_Generate(t *testing.T) {
	asker := &stubAsker{reply: "Suggest updating the profile."}
	uc := NewPromptUsecase(staticContext{text: "Active projects: 3"}, asker, ai.ActionPrompt, nil)

	res, err := uc.Generate(context.Background(), " viewed_dashboard ")
	require.NoError(t, err)
	assert.Equal(t, "The user performed action: viewed_dashboard.\nHere is the context:\nActive projects: 3", res.Prompt)
	assert.Equal(t, res.Prompt, asker.prompt)
	assert.Equal(t, "Suggest updating the profile.", res.Response)
}

func TestPromptUsecase_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewPromptUsecase(staticContext{}, &stubAsker{}, ai.ActionPrompt, nil).Generate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewPromptUsecase(staticContext{err: errors.New("db")}, &stubAsker{}, ai.ActionPrompt, nil).Generate(ctx, "login")
	assert.Error(t, err)

	_, err = NewPromptUsecase(staticContext{}, &stubAsker{err: ai.ErrUnavailable}, ai.ActionPrompt, nil).Generate(ctx, "login")
	assert.ErrorIs(t, err, ai.ErrUnavailable)
}
