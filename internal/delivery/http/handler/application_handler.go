package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationService interface {
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]usecase.ApplicationWithProject, error)
	Apply(ctx context.Context, callerID uuid.UUID, in usecase.ApplyInput) (application.Application, error)
	Recommendations(ctx context.Context, applicantID uuid.UUID) ([]usecase.JobRecommendationView, error)
	UpdateStatus(ctx context.Context, callerID, applicationID uuid.UUID, status application.Status, feedback string) (application.Application, error)
}

type ApplicationHandler struct {
	uc ApplicationService
}

func NewApplicationHandler(uc ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applicant/:applicantId", middleware.SelfOnly("applicantId"), h.ListByApplicant)
	r.Post("/", h.Apply)
	r.Get("/recommendations/:applicantId", middleware.SelfOnly("applicantId"), h.Recommendations)
	r.Put("/:applicationId/status", h.UpdateStatus)
}

func (h *ApplicationHandler) ListByApplicant(c fiber.Ctx) error {
	id, err := uuidParam(c, "applicantId")
	if err != nil {
		return err
	}
	list, err := h.uc.ListByApplicant(c.Context(), id)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.OK(c, list)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	created, err := h.uc.Apply(c.Context(), uid, usecase.ApplyInput{ProjectID: projectID, CoverLetter: req.CoverLetter})
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Created(c, created)
}

func (h *ApplicationHandler) Recommendations(c fiber.Ctx) error {
	id, err := uuidParam(c, "applicantId")
	if err != nil {
		return err
	}
	recs, err := h.uc.Recommendations(c.Context(), id)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.OK(c, map[string]any{"recommendations": recs})
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "applicationId")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateStatus(c.Context(), uid, id, application.Status(req.Status), req.Feedback)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.OK(c, updated)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrApplicantOnly):
		return middleware.NewAppError(fiber.StatusForbidden, "Only applicants can apply to projects", nil, err)
	case errors.Is(err, application.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already applied to this project", nil, err)
	case errors.Is(err, usecase.ErrProfileIncomplete):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please complete your profile first", nil, err)
	case errors.Is(err, project.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Applicant profile not found", nil, err)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not authenticated", nil, err)
	default:
		return internalError(err)
	}
}
