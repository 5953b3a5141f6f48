package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)
	// MarkRead only matches notifications owned by userID.
	MarkRead(ctx context.Context, userID, id uuid.UUID) (Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
