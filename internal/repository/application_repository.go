package repository

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/application"

	"github.com/google/uuid"
)

const applicationColumns = `id, applicant_id, project_id, status, match_score, cover_letter, ai_insights,
	interview_scheduled, interview_feedback, created_at, updated_at`

type PostgresApplicationRepository struct {
	db database.Querier
}

func NewPostgresApplicationRepository(db database.Querier) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

var _ application.Repository = (*PostgresApplicationRepository)(nil)

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(&a.ID, &a.ApplicantID, &a.ProjectID, &status, &a.MatchScore, &a.CoverLetter, &a.AIInsights,
		&a.InterviewScheduled, &a.InterviewFeedback, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.AIInsights = a.AIInsights.Normalize()
	return a, nil
}

func scanApplications(rows database.Rows) ([]application.Application, error) {
	defer rows.Close()
	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.Status == "" {
		a.Status = application.StatusPending
	}
	created, err := scanApplication(r.db.QueryRow(ctx,
		`INSERT INTO applications (applicant_id, project_id, status, match_score, cover_letter, ai_insights)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+applicationColumns,
		a.ApplicantID, a.ProjectID, string(a.Status), a.MatchScore, a.CoverLetter, a.AIInsights.Normalize(),
	))
	if err != nil {
		if postgres.IsUniqueViolation(err, "applications_applicant_project_key") {
			return application.Application{}, application.ErrAlreadyApplied
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	return scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, applicantID, projectID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE applicant_id = $1 AND project_id = $2)`,
		applicantID, projectID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE project_id = $1 ORDER BY match_score DESC, created_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, feedback string) (application.Application, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2, interview_feedback = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, string(status), feedback,
	))
}

func (r *PostgresApplicationRepository) ScheduleInterview(ctx context.Context, id uuid.UUID, at time.Time) (application.Application, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`UPDATE applications SET interview_scheduled = $2, status = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, at.UTC(), string(application.StatusInterviewed),
	))
}
