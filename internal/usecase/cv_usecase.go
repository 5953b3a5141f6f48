package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"talent-match/internal/domain/cv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxCVBytes is the largest CV upload accepted.
const MaxCVBytes = 10 << 20

var cvContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// AcceptedCVType reports whether an upload with this content type is processed.
func AcceptedCVType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return cvContentTypes[ct]
}

type FileStore interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

type CVParser interface {
	ExtractCV(ctx context.Context, text string) (cv.Extracted, error)
}

type CVUpload struct {
	Filename    string
	ContentType string
	Data        []byte
	UserID      *uuid.UUID
}

type CVUsecase struct {
	repo      cv.Repository
	store     FileStore
	extractor TextExtractor
	parser    CVParser
	logger    *zap.Logger
	now       func() time.Time
}

func NewCVUsecase(repo cv.Repository, store FileStore, extractor TextExtractor, parser CVParser, logger *zap.Logger) *CVUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CVUsecase{
		repo:      repo,
		store:     store,
		extractor: extractor,
		parser:    parser,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload stores the file, extracts its text, asks the model for structured
// fields and persists the record. Any failure past validation is reported as
// ErrCVProcessing with the cause wrapped.
func (u *CVUsecase) Upload(ctx context.Context, in CVUpload) (cv.Extracted, error) {
	if len(in.Data) == 0 {
		return cv.Extracted{}, ErrNoFile
	}
	if !AcceptedCVType(in.ContentType) {
		return cv.Extracted{}, ErrUnsupportedFile
	}
	if len(in.Data) > MaxCVBytes {
		return cv.Extracted{}, ErrUnsupportedFile
	}

	name := filepath.Base(in.Filename)
	log := u.logger.With(zap.String("filename", name), zap.Int("bytes", len(in.Data)))

	fileURL, err := u.store.Put(ctx, name, in.ContentType, in.Data)
	if err != nil {
		log.Error("store cv failed", zap.Error(err))
		return cv.Extracted{}, processingError("store", err)
	}

	text, err := u.extractor.ExtractText(ctx, name, in.Data)
	if err != nil {
		log.Error("extract cv text failed", zap.Error(err))
		return cv.Extracted{}, processingError("extract text", err)
	}
	if strings.TrimSpace(text) == "" {
		return cv.Extracted{}, processingError("extract text", errors.New("document has no text"))
	}

	extracted, err := u.parser.ExtractCV(ctx, text)
	if err != nil {
		log.Error("parse cv failed", zap.Error(err))
		return cv.Extracted{}, processingError("parse", err)
	}

	record := cv.NewRecord(extracted, fileURL, in.UserID, u.now())
	if _, err := u.repo.Create(ctx, record); err != nil {
		log.Error("save cv failed", zap.Error(err))
		return cv.Extracted{}, processingError("save", err)
	}

	log.Info("cv processed", zap.Int("skills", len(extracted.Skills)))
	return extracted, nil
}

func (u *CVUsecase) Get(ctx context.Context, id uuid.UUID) (cv.CV, error) {
	return u.repo.GetByID(ctx, id)
}

func processingError(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCVProcessing, step, err)
}
