package seeder

import (
	"context"

	"talent-match/internal/database"
)

// ResetSeeder empties every platform table. Schema migrations are untouched.
type ResetSeeder struct{}

func (ResetSeeder) Name() string { return "reset" }

func (ResetSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureSchema(ctx, db, seededColumns); err != nil {
		return err
	}
	_, err := db.Exec(ctx,
		`TRUNCATE notifications, applications, projects, cvs, applicant_profiles, recruiter_profiles, users`,
	)
	return err
}
