package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/cv"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const msgNoCVFile = "No CV file uploaded"

type CVService interface {
	Upload(ctx context.Context, in usecase.CVUpload) (cv.Extracted, error)
	Get(ctx context.Context, id uuid.UUID) (cv.CV, error)
}

type CVHandler struct {
	uc CVService
}

func NewCVHandler(uc CVService) *CVHandler {
	return &CVHandler{uc: uc}
}

// RegisterRoutes accepts anonymous uploads; a signed-in uploader is recorded
// on the stored CV.
func (h *CVHandler) RegisterRoutes(r fiber.Router, optionalAuth, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/upload", optionalAuth, h.Upload)
	r.Get("/:id", requireAuth, h.Get)
}

func (h *CVHandler) Upload(c fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoCVFile, nil, err)
	}
	fh := firstAcceptedFile(form)
	if fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoCVFile, nil, nil)
	}

	data, err := readFile(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoCVFile, nil, err)
	}

	in := usecase.CVUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}
	if uid, ok := middleware.UserID(c); ok {
		in.UserID = &uid
	}

	extracted, err := h.uc.Upload(c.Context(), in)
	if err != nil {
		return mapCVError(err)
	}
	return response.OK(c, extracted)
}

func (h *CVHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	rec, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCVError(err)
	}
	return response.OK(c, rec)
}

// firstAcceptedFile scans every form field, like a catch-all upload, and
// skips files of the wrong type or size.
func firstAcceptedFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, files := range form.File {
		for _, fh := range files {
			if fh.Size > 0 && fh.Size <= usecase.MaxCVBytes && usecase.AcceptedCVType(fh.Header.Get(fiber.HeaderContentType)) {
				return fh
			}
		}
	}
	return nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, usecase.MaxCVBytes+1))
}

func mapCVError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoFile), errors.Is(err, usecase.ErrUnsupportedFile):
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoCVFile, nil, err)
	case errors.Is(err, cv.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "CV not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "CV processing failed", nil, err)
	}
}
