package seeder

import (
	"context"

	"talent-match/internal/database"
)

// Seeder loads one slice of data. Seeders run in order and may assume the
// previous ones succeeded.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults wipes the platform tables and loads the demo accounts.
func Defaults() []Seeder {
	return []Seeder{
		ResetSeeder{},
		DemoSeeder{},
	}
}
