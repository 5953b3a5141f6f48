package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/notification"

	"github.com/google/uuid"
)

const notificationColumns = `id, user_id, type, title, message, data, read, created_at`

type PostgresNotificationRepository struct {
	db database.Querier
}

func NewPostgresNotificationRepository(db database.Querier) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

var _ notification.Repository = (*PostgresNotificationRepository)(nil)

func scanNotification(row database.Row) (notification.Notification, error) {
	var n notification.Notification
	var typ string
	if err := row.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &n.Data, &n.Read, &n.CreatedAt); err != nil {
		if postgres.IsNoRows(err) {
			return notification.Notification{}, notification.ErrNotFound
		}
		return notification.Notification{}, err
	}
	n.Type = notification.Type(typ)
	if n.Data == nil {
		n.Data = map[string]any{}
	}
	return n, nil
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}
	return scanNotification(r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, title, message, data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+notificationColumns,
		n.UserID, string(n.Type), n.Title, n.Message, data,
	))
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) (notification.Notification, error) {
	return scanNotification(r.db.QueryRow(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2 RETURNING `+notificationColumns,
		id, userID,
	))
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `UPDATE notifications SET read = true WHERE user_id = $1 AND NOT read`, userID)
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&n)
	return n, err
}

func (r *PostgresNotificationRepository) DeleteAll(ctx context.Context) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM notifications`)
}
