package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, in usecase.CreateProfileInput) (any, error)
	SaveApplicant(ctx context.Context, userID uuid.UUID, p profile.ApplicantProfile) (profile.ApplicantProfile, error)
	CreateRecruiter(ctx context.Context, userID uuid.UUID, p profile.RecruiterProfile) (profile.RecruiterProfile, error)
	Get(ctx context.Context, userID uuid.UUID) (usecase.ProfileView, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, rawRole string) error
}

type ProfileHandler struct {
	uc ProfileService
}

func NewProfileHandler(uc ProfileService) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Post("/applicant", h.SaveApplicant)
	r.Post("/recruiter", h.CreateRecruiter)
	r.Put("/role", h.UpdateRole)
	r.Get("/:userId", h.Get)
}

// Create reads the role first, then decodes the rest of the body as that
// role's profile.
func (h *ProfileHandler) Create(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var head dto.RoleRequest
	if err := bindBody(c, &head); err != nil {
		return err
	}
	role, ok := user.ParseRole(head.Role)
	if !ok {
		return mapProfileError(usecase.ErrRoleRequired)
	}

	in := usecase.CreateProfileInput{Role: string(role)}
	if role == user.RoleApplicant {
		var req dto.ApplicantProfileRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}
		in.Applicant = req.ToDomain()
	} else {
		var req dto.RecruiterProfileRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}
		in.Recruiter = req.ToDomain()
	}

	saved, err := h.uc.Create(c.Context(), uid, in)
	if err != nil {
		return mapProfileError(err)
	}
	return response.OK(c, saved)
}

func (h *ProfileHandler) SaveApplicant(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.ApplicantProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.SaveApplicant(c.Context(), uid, req.ToDomain())
	if err != nil {
		return mapProfileError(err)
	}
	return response.OK(c, saved)
}

func (h *ProfileHandler) CreateRecruiter(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.RecruiterProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.CreateRecruiter(c.Context(), uid, req.ToDomain())
	if err != nil {
		return mapProfileError(err)
	}
	return response.Created(c, saved)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	view, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapProfileError(err)
	}
	return response.OK(c, view)
}

func (h *ProfileHandler) UpdateRole(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.uc.UpdateRole(c.Context(), uid, req.Role); err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, "Role updated successfully", nil)
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRoleRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Valid role is required", nil, err)
	case errors.Is(err, usecase.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid role", nil, err)
	case errors.Is(err, usecase.ErrProfileExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile already exists", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return internalError(err)
	}
}
