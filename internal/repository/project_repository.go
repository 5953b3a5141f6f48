package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
)

const projectColumns = `id, recruiter_id, title, company, description, location, remote_option, employment_type,
	experience_level, required_skills, preferred_skills, required_certifications, salary_range, benefits,
	requirements, responsibilities, status, priority, applications_count, matches_count, deadline,
	created_at, updated_at`

type PostgresProjectRepository struct {
	db database.Querier
}

func NewPostgresProjectRepository(db database.Querier) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

var _ project.Repository = (*PostgresProjectRepository)(nil)

func scanProject(row database.Row) (project.Project, error) {
	var p project.Project
	var remote, employment, level, status, priority string
	err := row.Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Company, &p.Description, &p.Location, &remote, &employment,
		&level, &p.RequiredSkills, &p.PreferredSkills, &p.RequiredCertifications, &p.SalaryRange, &p.Benefits,
		&p.Requirements, &p.Responsibilities, &status, &priority, &p.ApplicationsCount, &p.MatchesCount, &p.Deadline,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	p.RemoteOption = project.RemoteOption(remote)
	p.EmploymentType = project.EmploymentType(employment)
	p.ExperienceLevel = profile.ExperienceLevel(level)
	p.Status = project.Status(status)
	p.Priority = project.Priority(priority)
	return p, nil
}

func scanProjects(rows database.Rows) ([]project.Project, error) {
	defer rows.Close()
	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ApplyDefaults()
	return scanProject(r.db.QueryRow(ctx,
		`INSERT INTO projects (recruiter_id, title, company, description, location, remote_option, employment_type,
			experience_level, required_skills, preferred_skills, required_certifications, salary_range, benefits,
			requirements, responsibilities, status, priority, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING `+projectColumns,
		p.RecruiterID, p.Title, p.Company, p.Description, p.Location, string(p.RemoteOption), string(p.EmploymentType),
		string(p.ExperienceLevel), p.RequiredSkills, p.PreferredSkills, p.RequiredCertifications, p.SalaryRange, p.Benefits,
		p.Requirements, p.Responsibilities, string(p.Status), string(p.Priority), p.Deadline,
	))
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *PostgresProjectRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]project.Project, error) {
	out := make(map[uuid.UUID]project.Project, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	list, err := scanProjects(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

// Update rewrites every editable column; counters and ownership are left alone.
func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	p.ApplyDefaults()
	return scanProject(r.db.QueryRow(ctx,
		`UPDATE projects SET
			title = $2, company = $3, description = $4, location = $5, remote_option = $6, employment_type = $7,
			experience_level = $8, required_skills = $9, preferred_skills = $10, required_certifications = $11,
			salary_range = $12, benefits = $13, requirements = $14, responsibilities = $15, status = $16,
			priority = $17, deadline = $18, updated_at = now()
		 WHERE id = $1
		 RETURNING `+projectColumns,
		p.ID, p.Title, p.Company, p.Description, p.Location, string(p.RemoteOption), string(p.EmploymentType),
		string(p.ExperienceLevel), p.RequiredSkills, p.PreferredSkills, p.RequiredCertifications,
		p.SalaryRange, p.Benefits, p.Requirements, p.Responsibilities, string(p.Status),
		string(p.Priority), p.Deadline,
	))
}

func (r *PostgresProjectRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	return scanProjects(rows)
}

func (r *PostgresProjectRepository) ListByStatus(ctx context.Context, status project.Status, limit int) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY created_at DESC`
	args := []any{string(status)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanProjects(rows)
}

func (r *PostgresProjectRepository) IncrementApplications(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE projects SET applications_count = applications_count + 1, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}
