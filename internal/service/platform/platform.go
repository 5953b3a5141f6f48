// Package platform assembles a plain-text snapshot of the marketplace that is
// handed to language models as context, both by the prompt endpoint and by
// the MCP server.
package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/domain/project"
)

const (
	snapshotProjects = 100
	snapshotSkills   = 10
	listedProjects   = 5
)

type Snapshot struct {
	ActiveProjects int               `json:"active_projects"`
	TopSkills      []string          `json:"top_skills"`
	Latest         []project.Summary `json:"latest_projects"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// String renders the snapshot as prompt context.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Talent Match platform snapshot (%s)\n", s.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Active projects: %d\n", s.ActiveProjects)
	if len(s.TopSkills) > 0 {
		fmt.Fprintf(&b, "Most demanded skills: %s\n", strings.Join(s.TopSkills, ", "))
	}
	if len(s.Latest) > 0 {
		b.WriteString("Latest projects:\n")
		for _, p := range s.Latest {
			fmt.Fprintf(&b, "- %s at %s (%s, %s)\n", p.Title, p.Company, p.Location, p.ExperienceLevel)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type Provider struct {
	projects project.Repository
	now      func() time.Time
}

func NewProvider(projects project.Repository) *Provider {
	return &Provider{projects: projects, now: time.Now}
}

func (p *Provider) Snapshot(ctx context.Context) (Snapshot, error) {
	active, err := p.projects.ListByStatus(ctx, project.StatusActive, snapshotProjects)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list active projects: %w", err)
	}

	s := Snapshot{
		ActiveProjects: len(active),
		TopSkills:      project.RankSkillDemand(active, snapshotSkills),
		Latest:         make([]project.Summary, 0, listedProjects),
		GeneratedAt:    p.now(),
	}
	for _, pr := range active[:min(listedProjects, len(active))] {
		s.Latest = append(s.Latest, pr.Summary())
	}
	return s, nil
}

// Context returns the rendered snapshot.
func (p *Provider) Context(ctx context.Context) (string, error) {
	s, err := p.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
