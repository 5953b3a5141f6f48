package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/project"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjects struct {
	project.Repository
	active []project.Project
	err    error
}

func (f fakeProjects) ListByStatus(_ context.Context, status project.Status, _ int) ([]project.Project, error) {
	if status != project.StatusActive {
		return nil, nil
	}
	return f.active, f.err
}

func TestProvider_Context(t *testing.T) {
	var active []project.Project
	for i := 0; i < 7; i++ {
		active = append(active, project.Project{
			ID:              uuid.New(),
			Title:           "Engineer",
			Company:         "TechCorp Solutions",
			Location:        "Johannesburg",
			ExperienceLevel: "mid",
			RequiredSkills:  []string{"Go"},
			PreferredSkills: []string{"Docker"},
		})
	}
	p := NewProvider(fakeProjects{active: active})
	p.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	s, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, s.ActiveProjects)
	assert.Len(t, s.Latest, listedProjects)
	assert.Equal(t, []string{"go", "docker"}, s.TopSkills)

	text, err := p.Context(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "snapshot (2024-05-01T10:00:00Z)")
	assert.Contains(t, text, "Active projects: 7")
	assert.Contains(t, text, "Most demanded skills: go, docker")
	assert.Contains(t, text, "- Engineer at TechCorp Solutions (Johannesburg, mid)")
}

func TestProvider_Empty(t *testing.T) {
	text, err := NewProvider(fakeProjects{}).Context(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "Active projects: 0")
	assert.NotContains(t, text, "Latest projects")
}

func TestProvider_Error(t *testing.T) {
	_, err := NewProvider(fakeProjects{err: errors.New("db down")}).Snapshot(context.Background())
	assert.ErrorContains(t, err, "db down")
}
