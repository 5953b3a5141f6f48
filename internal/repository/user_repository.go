package repository

import (
	"context"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, COALESCE(google_id, ''), email, full_name, avatar_url, COALESCE(role, ''),
	profile_completed, COALESCE(password_hash, ''), created_at, updated_at`

type PostgresUserRepository struct {
	db database.Querier
}

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(&u.ID, &u.GoogleID, &u.Email, &u.FullName, &u.AvatarURL, &role,
		&u.ProfileCompleted, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (google_id, email, full_name, avatar_url, role, profile_completed, password_hash)
		 VALUES (NULLIF($1, ''), lower($2), $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''))
		 RETURNING `+userColumns,
		u.GoogleID, strings.TrimSpace(u.Email), u.FullName, u.AvatarURL, string(u.Role), u.ProfileCompleted, u.PasswordHash,
	)
	created, err := scanUser(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, "users_email_key") {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return created, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	))
}

func (r *PostgresUserRepository) FindByGoogleIDOrEmail(ctx context.Context, googleID, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE (google_id = NULLIF($1, '')) OR lower(email) = lower($2)
		 ORDER BY (google_id = NULLIF($1, '')) DESC NULLS LAST
		 LIMIT 1`,
		googleID, strings.TrimSpace(email),
	))
}

func (r *PostgresUserRepository) SetGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET google_id = $2, updated_at = now() WHERE id = $1`,
		id, googleID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role, profileCompleted bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET role = $2, profile_completed = $3, updated_at = now() WHERE id = $1`,
		id, string(role), profileCompleted,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) SetProfileCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET profile_completed = $2, updated_at = now() WHERE id = $1`,
		id, completed,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}
