package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Project, error)
	// ListByStatus returns newest first; limit <= 0 returns every match.
	ListByStatus(ctx context.Context, status Status, limit int) ([]Project, error)
	IncrementApplications(ctx context.Context, id uuid.UUID) error
}
