package seeder

import (
	"context"
	"fmt"
	"sort"

	"talent-match/internal/database"
)

// seededColumns are the columns the seeders write. Checking them up front turns
// a missed migration into one readable error instead of a failed insert.
var seededColumns = map[string][]string{
	"users":              {"id", "email", "full_name", "role", "profile_completed", "password_hash"},
	"applicant_profiles": {"user_id", "skills", "work_experience", "education", "profile_score"},
	"recruiter_profiles": {"user_id", "company", "specializations"},
	"projects":           {"id", "recruiter_id", "required_skills", "status", "applications_count", "matches_count"},
	"applications":       {"applicant_id", "project_id", "match_score", "ai_insights", "interview_scheduled"},
	"notifications":      {"user_id", "type", "data", "read"},
}

func EnsureSchema(ctx context.Context, q database.Querier, tables map[string][]string) error {
	names := make([]string, 0, len(tables))
	for t := range tables {
		names = append(names, t)
	}
	sort.Strings(names)
	for _, t := range names {
		if err := EnsureTableColumns(ctx, q, t, tables[t]...); err != nil {
			return err
		}
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(existing) == 0 {
		return fmt.Errorf("schema mismatch: table %s does not exist, run migrate first", table)
	}

	for _, col := range columns {
		if !existing[col] {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
