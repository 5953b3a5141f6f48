package cv

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cv not found")

type Repository interface {
	Create(ctx context.Context, c CV) (CV, error)
	GetByID(ctx context.Context, id uuid.UUID) (CV, error)
}
