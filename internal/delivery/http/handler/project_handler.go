package handler

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/project"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectService interface {
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]project.Project, error)
	Create(ctx context.Context, callerID uuid.UUID, p project.Project) (project.Project, error)
	Update(ctx context.Context, callerID, projectID uuid.UUID, patch usecase.ProjectPatch) (project.Project, error)
	Candidates(ctx context.Context, callerID, projectID uuid.UUID) ([]usecase.Candidate, error)
	ScheduleInterview(ctx context.Context, callerID, projectID, applicationID uuid.UUID, at time.Time) (application.Application, error)
	Active(ctx context.Context) ([]project.Summary, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
}

type ProjectHandler struct {
	uc ProjectService
}

func NewProjectHandler(uc ProjectService) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// RegisterRoutes leaves /active public; every other route runs requireAuth.
func (h *ProjectHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/active", h.Active)
	r.Get("/recruiter/:recruiterId", requireAuth, h.ListByRecruiter)
	r.Post("/", requireAuth, h.Create)
	r.Get("/:projectId", requireAuth, h.Get)
	r.Put("/:projectId", requireAuth, h.Update)
	r.Get("/:projectId/candidates", requireAuth, h.Candidates)
	r.Post("/:projectId/schedule-interview", requireAuth, h.ScheduleInterview)
}

func (h *ProjectHandler) Active(c fiber.Ctx) error {
	list, err := h.uc.Active(c.Context())
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, list)
}

func (h *ProjectHandler) ListByRecruiter(c fiber.Ctx) error {
	id, err := uuidParam(c, "recruiterId")
	if err != nil {
		return err
	}
	list, err := h.uc.ListByRecruiter(c.Context(), id)
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, list)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.CreateProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), uid, req.ToDomain())
	if err != nil {
		return mapProjectError(err)
	}
	return response.Created(c, created)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "projectId")
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, p)
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "projectId")
	if err != nil {
		return err
	}
	var req dto.UpdateProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), uid, id, req.ToPatch())
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, updated)
}

func (h *ProjectHandler) Candidates(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "projectId")
	if err != nil {
		return err
	}
	list, err := h.uc.Candidates(c.Context(), uid, id)
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, list)
}

func (h *ProjectHandler) ScheduleInterview(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "projectId")
	if err != nil {
		return err
	}
	var req dto.ScheduleInterviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	updated, err := h.uc.ScheduleInterview(c.Context(), uid, projectID, appID, req.InterviewDate)
	if err != nil {
		return mapProjectError(err)
	}
	return response.OK(c, updated)
}

func mapProjectError(err error) error {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrRecruiterOnly):
		return middleware.NewAppError(fiber.StatusForbidden, "Only recruiters can create projects", nil, err)
	case errors.Is(err, usecase.ErrNotProjectOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to update this project", nil, err)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInterviewDate):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid interview date", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not authenticated", nil, err)
	default:
		return internalError(err)
	}
}
