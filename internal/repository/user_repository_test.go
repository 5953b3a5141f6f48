package repository

import (
	"context"
	"testing"

	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRow(u user.User) []any {
	return []any{u.ID, u.GoogleID, u.Email, u.FullName, u.AvatarURL, string(u.Role),
		u.ProfileCompleted, u.PasswordHash, u.CreatedAt, u.UpdatedAt}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	want := user.User{ID: uuid.New(), Email: "jane@example.com", FullName: "Jane Smith", Role: user.RoleApplicant}
	q := &fakeQuerier{row: fakeRow{values: userRow(want)}}

	got, err := NewPostgresUserRepository(q).Create(ctx, user.User{Email: "  Jane@Example.com ", FullName: "Jane Smith", Role: user.RoleApplicant})
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, user.RoleApplicant, got.Role)
	assert.Equal(t, "Jane@Example.com", q.last().args[1])
}

func TestUserRepository_CreateEmailTaken(t *testing.T) {
	ctx := context.Background()
	taken := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	repo := NewPostgresUserRepository(&fakeQuerier{row: fakeRow{err: taken}})

	_, err := repo.Create(ctx, user.User{Email: "jane@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	googleTaken := &pgconn.PgError{Code: "23505", ConstraintName: "users_google_id_key"}
	repo = NewPostgresUserRepository(&fakeQuerier{row: fakeRow{err: googleTaken}})
	_, err = repo.Create(ctx, user.User{Email: "jane@example.com", GoogleID: "g-1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrEmailTaken)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresUserRepository(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}})

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = repo.FindByGoogleIDOrEmail(ctx, "g-1", "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_FindByGoogleIDOrEmailPrefersGoogleID(t *testing.T) {
	ctx := context.Background()
	linked := user.User{ID: uuid.New(), GoogleID: "g-1", Email: "john@example.com", Role: user.RoleApplicant}
	q := &fakeQuerier{row: fakeRow{values: userRow(linked)}}

	got, err := NewPostgresUserRepository(q).FindByGoogleIDOrEmail(ctx, "g-1", " John@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "g-1", got.GoogleID)

	c := q.last()
	assert.Equal(t, []any{"g-1", "John@Example.com"}, c.args)
	assert.Contains(t, c.sql, "ORDER BY (google_id = NULLIF($1, '')) DESC")
	assert.Contains(t, c.sql, "LIMIT 1")
}

func TestUserRepository_UpdatesReportMissingRows(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{affected: 0}
	repo := NewPostgresUserRepository(q)

	assert.ErrorIs(t, repo.SetGoogleID(ctx, uuid.New(), "g-1"), user.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateRole(ctx, uuid.New(), user.RoleRecruiter, true), user.ErrNotFound)
	assert.ErrorIs(t, repo.SetProfileCompleted(ctx, uuid.New(), true), user.ErrNotFound)

	q.affected = 1
	assert.NoError(t, repo.UpdateRole(ctx, uuid.New(), user.RoleRecruiter, true))
	assert.Equal(t, "recruiter", q.last().args[1])
}
