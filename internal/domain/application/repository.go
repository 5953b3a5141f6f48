package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied to this project")
)

type Repository interface {
	// Create returns ErrAlreadyApplied when the applicant/project pair exists.
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	Exists(ctx context.Context, applicantID, projectID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	// ListByProject orders by match score, best first.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, feedback string) (Application, error)
	ScheduleInterview(ctx context.Context, id uuid.UUID, at time.Time) (Application, error)
}
