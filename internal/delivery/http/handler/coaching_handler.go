package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/profile"
	"talent-match/internal/pkg/response"
	"talent-match/internal/service/ai"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CoachingService interface {
	Recommendations(ctx context.Context, userID uuid.UUID) ([]ai.SkillRecommendation, error)
	UpdateSkill(ctx context.Context, userID uuid.UUID, skillName string, level int) (profile.ApplicantProfile, error)
	Resources(skillName string) []usecase.Resource
	Analytics(ctx context.Context, userID uuid.UUID) (usecase.SkillAnalytics, error)
}

type CoachingHandler struct {
	uc CoachingService
}

func NewCoachingHandler(uc CoachingService) *CoachingHandler {
	return &CoachingHandler{uc: uc}
}

// RegisterRoutes scopes every route to the caller's own :userId.
func (h *CoachingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	self := middleware.SelfOnly("userId")
	r.Get("/:userId/recommendations", self, h.Recommendations)
	r.Put("/:userId/skills/:skillName", self, h.UpdateSkill)
	r.Get("/:userId/resources/:skillName", self, h.Resources)
	r.Get("/:userId/analytics", self, h.Analytics)
}

func (h *CoachingHandler) Recommendations(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	recs, err := h.uc.Recommendations(c.Context(), id)
	if err != nil {
		return mapCoachingError(err)
	}
	return response.OK(c, recs)
}

func (h *CoachingHandler) UpdateSkill(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	var req dto.UpdateSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.UpdateSkill(c.Context(), id, textParam(c, "skillName"), *req.Level)
	if err != nil {
		return mapCoachingError(err)
	}
	return response.OK(c, saved)
}

func (h *CoachingHandler) Resources(c fiber.Ctx) error {
	return response.OK(c, map[string]any{"resources": h.uc.Resources(textParam(c, "skillName"))})
}

func (h *CoachingHandler) Analytics(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	stats, err := h.uc.Analytics(c.Context(), id)
	if err != nil {
		return mapCoachingError(err)
	}
	return response.OK(c, stats)
}

func mapCoachingError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidSkillLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill level must be between 0 and 100", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return internalError(err)
	}
}
