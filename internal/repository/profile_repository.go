package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/database/postgres"
	"talent-match/internal/domain/profile"

	"github.com/google/uuid"
)

const applicantColumns = `id, user_id, phone, location, bio, linkedin_url, github_url, portfolio_url,
	skills, work_experience, education, certifications, experience_level, preferred_salary,
	availability, remote_preference, profile_score, created_at, updated_at`

type PostgresApplicantProfileRepository struct {
	db database.Querier
}

func NewPostgresApplicantProfileRepository(db database.Querier) *PostgresApplicantProfileRepository {
	return &PostgresApplicantProfileRepository{db: db}
}

var _ profile.ApplicantRepository = (*PostgresApplicantProfileRepository)(nil)

func scanApplicant(row database.Row) (profile.ApplicantProfile, error) {
	var p profile.ApplicantProfile
	var level, availability, remote string
	err := row.Scan(&p.ID, &p.UserID, &p.Phone, &p.Location, &p.Bio, &p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL,
		&p.Skills, &p.WorkExperience, &p.Education, &p.Certifications, &level, &p.PreferredSalary,
		&availability, &remote, &p.ProfileScore, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return profile.ApplicantProfile{}, profile.ErrNotFound
		}
		return profile.ApplicantProfile{}, err
	}
	p.ExperienceLevel = profile.ExperienceLevel(level)
	p.Availability = profile.Availability(availability)
	p.RemotePreference = profile.RemotePreference(remote)
	return p, nil
}

func (r *PostgresApplicantProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.ApplicantProfile, error) {
	return scanApplicant(r.db.QueryRow(ctx, `SELECT `+applicantColumns+` FROM applicant_profiles WHERE user_id = $1`, userID))
}

func (r *PostgresApplicantProfileRepository) Upsert(ctx context.Context, p profile.ApplicantProfile) (profile.ApplicantProfile, error) {
	p.ApplyDefaults()
	return scanApplicant(r.db.QueryRow(ctx,
		`INSERT INTO applicant_profiles (user_id, phone, location, bio, linkedin_url, github_url, portfolio_url,
			skills, work_experience, education, certifications, experience_level, preferred_salary,
			availability, remote_preference, profile_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			portfolio_url = EXCLUDED.portfolio_url,
			skills = EXCLUDED.skills,
			work_experience = EXCLUDED.work_experience,
			education = EXCLUDED.education,
			certifications = EXCLUDED.certifications,
			experience_level = EXCLUDED.experience_level,
			preferred_salary = EXCLUDED.preferred_salary,
			availability = EXCLUDED.availability,
			remote_preference = EXCLUDED.remote_preference,
			profile_score = EXCLUDED.profile_score,
			updated_at = now()
		 RETURNING `+applicantColumns,
		p.UserID, p.Phone, p.Location, p.Bio, p.LinkedInURL, p.GitHubURL, p.PortfolioURL,
		p.Skills, p.WorkExperience, p.Education, p.Certifications, string(p.ExperienceLevel), p.PreferredSalary,
		string(p.Availability), string(p.RemotePreference), p.ProfileScore,
	))
}

func (r *PostgresApplicantProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profile.ApplicantProfile, error) {
	out := make(map[uuid.UUID]profile.ApplicantProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+applicantColumns+` FROM applicant_profiles WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const recruiterColumns = `id, user_id, phone, company, position, location, company_website, company_size,
	industry, bio, linkedin_url, specializations, years_experience, created_at, updated_at`

type PostgresRecruiterProfileRepository struct {
	db database.Querier
}

func NewPostgresRecruiterProfileRepository(db database.Querier) *PostgresRecruiterProfileRepository {
	return &PostgresRecruiterProfileRepository{db: db}
}

var _ profile.RecruiterRepository = (*PostgresRecruiterProfileRepository)(nil)

func scanRecruiter(row database.Row) (profile.RecruiterProfile, error) {
	var p profile.RecruiterProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Phone, &p.Company, &p.Position, &p.Location, &p.CompanyWebsite, &p.CompanySize,
		&p.Industry, &p.Bio, &p.LinkedInURL, &p.Specializations, &p.YearsExperience, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return profile.RecruiterProfile{}, profile.ErrNotFound
		}
		return profile.RecruiterProfile{}, err
	}
	return p, nil
}

func (r *PostgresRecruiterProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.RecruiterProfile, error) {
	return scanRecruiter(r.db.QueryRow(ctx, `SELECT `+recruiterColumns+` FROM recruiter_profiles WHERE user_id = $1`, userID))
}

func (r *PostgresRecruiterProfileRepository) Upsert(ctx context.Context, p profile.RecruiterProfile) (profile.RecruiterProfile, error) {
	p.ApplyDefaults()
	return scanRecruiter(r.db.QueryRow(ctx,
		`INSERT INTO recruiter_profiles (user_id, phone, company, position, location, company_website, company_size,
			industry, bio, linkedin_url, specializations, years_experience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			position = EXCLUDED.position,
			location = EXCLUDED.location,
			company_website = EXCLUDED.company_website,
			company_size = EXCLUDED.company_size,
			industry = EXCLUDED.industry,
			bio = EXCLUDED.bio,
			linkedin_url = EXCLUDED.linkedin_url,
			specializations = EXCLUDED.specializations,
			years_experience = EXCLUDED.years_experience,
			updated_at = now()
		 RETURNING `+recruiterColumns,
		p.UserID, p.Phone, p.Company, p.Position, p.Location, p.CompanyWebsite, p.CompanySize,
		p.Industry, p.Bio, p.LinkedInURL, p.Specializations, p.YearsExperience,
	))
}
