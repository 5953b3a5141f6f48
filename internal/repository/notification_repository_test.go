package repository

import (
	"context"
	"testing"

	"talent-match/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkReadIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	owner, id := uuid.New(), uuid.New()
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewPostgresNotificationRepository(q)

	_, err := repo.MarkRead(ctx, owner, id)
	assert.ErrorIs(t, err, notification.ErrNotFound)

	c := q.last()
	assert.Contains(t, c.sql, "WHERE id = $1 AND user_id = $2")
	assert.Equal(t, []any{id, owner}, c.args)
}

func TestNotificationRepository_CreateDefaultsData(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := []any{uuid.New(), userID, "new_match", "New Match", "Found one", nil, false, nil}
	q := &fakeQuerier{row: fakeRow{values: stored}}

	n, err := NewPostgresNotificationRepository(q).Create(ctx, notification.Notification{UserID: userID, Type: notification.TypeNewMatch})
	require.NoError(t, err)
	assert.Equal(t, notification.TypeNewMatch, n.Type)
	assert.NotNil(t, n.Data)
	assert.Equal(t, map[string]any{}, q.last().args[4])
}

func TestNotificationRepository_ListByUserDefaultLimit(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{rows: &fakeRows{}}

	list, err := NewPostgresNotificationRepository(q).ListByUser(ctx, uuid.New(), 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
	assert.Equal(t, 50, q.last().args[1])
}
