package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/cv"

	"github.com/google/uuid"
)

const cvColumns = `id, user_id, name, email, phone, about, github, profile, skills, experience, education,
	extracted, file_url, uploaded_at`

type PostgresCVRepository struct {
	db database.Querier
}

func NewPostgresCVRepository(db database.Querier) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

var _ cv.Repository = (*PostgresCVRepository)(nil)

func scanCV(row database.Row) (cv.CV, error) {
	var c cv.CV
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.About, &c.GitHub, &c.Profile,
		&c.Skills, &c.Experience, &c.Education, &c.Extracted, &c.FileURL, &c.UploadedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return cv.CV{}, cv.ErrNotFound
		}
		return cv.CV{}, err
	}
	return c, nil
}

func (r *PostgresCVRepository) Create(ctx context.Context, c cv.CV) (cv.CV, error) {
	return scanCV(r.db.QueryRow(ctx,
		`INSERT INTO cvs (user_id, name, email, phone, about, github, profile, skills, experience, education,
			extracted, file_url, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING `+cvColumns,
		c.UserID, c.Name, c.Email, c.Phone, c.About, c.GitHub, c.Profile, nonNil(c.Skills), nonNil(c.Experience),
		nonNil(c.Education), c.Extracted, c.FileURL, c.UploadedAt,
	))
}

func (r *PostgresCVRepository) GetByID(ctx context.Context, id uuid.UUID) (cv.CV, error) {
	return scanCV(r.db.QueryRow(ctx, `SELECT `+cvColumns+` FROM cvs WHERE id = $1`, id))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
