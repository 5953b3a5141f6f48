package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type ApplicantRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (ApplicantProfile, error)
	// Upsert inserts or replaces the profile keyed by user id and returns the stored row.
	Upsert(ctx context.Context, p ApplicantProfile) (ApplicantProfile, error)
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]ApplicantProfile, error)
}

type RecruiterRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (RecruiterProfile, error)
	Upsert(ctx context.Context, p RecruiterProfile) (RecruiterProfile, error)
}
