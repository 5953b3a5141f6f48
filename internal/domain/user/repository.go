package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// FindByGoogleIDOrEmail prefers a google_id match over an email match.
	FindByGoogleIDOrEmail(ctx context.Context, googleID, email string) (User, error)
	SetGoogleID(ctx context.Context, id uuid.UUID, googleID string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role Role, profileCompleted bool) error
	SetProfileCompleted(ctx context.Context, id uuid.UUID, completed bool) error
}
