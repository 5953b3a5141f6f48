package usecase

import (
	"context"

	"talent-match/internal/domain/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notificationListLimit = 50

// Pusher delivers a stored notification to the user's live connections.
type Pusher interface {
	Push(userID uuid.UUID, n notification.Notification)
}

// Notifier is what other usecases use to tell a user something happened.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification)
}

type NotificationUsecase struct {
	repo   notification.Repository
	pusher Pusher
	logger *zap.Logger
}

func NewNotificationUsecase(repo notification.Repository, pusher Pusher, logger *zap.Logger) *NotificationUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationUsecase{repo: repo, pusher: pusher, logger: logger}
}

// Notify stores n and pushes it. Failures are logged; the triggering action has
// already succeeded and is not rolled back.
func (u *NotificationUsecase) Notify(ctx context.Context, n notification.Notification) {
	created, err := u.repo.Create(ctx, n)
	if err != nil {
		u.logger.Error("create notification failed",
			zap.String("user_id", n.UserID.String()),
			zap.String("type", string(n.Type)),
			zap.Error(err),
		)
		return
	}
	if u.pusher != nil {
		u.pusher.Push(created.UserID, created)
	}
}

func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	return u.repo.ListByUser(ctx, userID, notificationListLimit)
}

// MarkRead reports notification.ErrNotFound for notifications of other users.
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, id uuid.UUID) (notification.Notification, error) {
	return u.repo.MarkRead(ctx, userID, id)
}

func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return u.repo.MarkAllRead(ctx, userID)
}

func (u *NotificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return u.repo.CountUnread(ctx, userID)
}

func (u *NotificationUsecase) ClearAll(ctx context.Context) (int64, error) {
	return u.repo.DeleteAll(ctx)
}
