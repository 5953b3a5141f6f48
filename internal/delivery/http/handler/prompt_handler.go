package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PromptService interface {
	Generate(ctx context.Context, action string) (usecase.PromptResult, error)
}

type PromptHandler struct {
	uc PromptService
}

func NewPromptHandler(uc PromptService) *PromptHandler {
	return &PromptHandler{uc: uc}
}

func (h *PromptHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Generate)
}

func (h *PromptHandler) Generate(c fiber.Ctx) error {
	var req dto.PromptRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	res, err := h.uc.Generate(c.Context(), req.Action)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return internalError(err)
	}
	return response.OK(c, res)
}
