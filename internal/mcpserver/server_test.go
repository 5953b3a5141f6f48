package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/service/platform"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSnapshot struct{ snap platform.Snapshot }

func (f fixedSnapshot) Snapshot(context.Context) (platform.Snapshot, error) { return f.snap, nil }

type applicantsByID struct {
	profile.ApplicantRepository
	byUser map[uuid.UUID]profile.ApplicantProfile
}

func (a applicantsByID) GetByUserID(_ context.Context, id uuid.UUID) (profile.ApplicantProfile, error) {
	p, ok := a.byUser[id]
	if !ok {
		return profile.ApplicantProfile{}, profile.ErrNotFound
	}
	return p, nil
}

type projectsByID struct {
	project.Repository
	byID map[uuid.UUID]project.Project
}

func (p projectsByID) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	v, ok := p.byID[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return v, nil
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientT, serverT := mcp.NewInMemoryTransports()

	ss, err := s.MCP().Connect(ctx, serverT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func structured[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestServer_ListsTools(t *testing.T) {
	cs := connect(t, New(fixedSnapshot{}, applicantsByID{}, projectsByID{}, "test", nil))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{toolPlatformContext, toolScoreMatch}, names)
}

func TestServer_PlatformContext(t *testing.T) {
	snap := platform.Snapshot{
		ActiveProjects: 3,
		TopSkills:      []string{"go", "react"},
		GeneratedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	cs := connect(t, New(fixedSnapshot{snap: snap}, applicantsByID{}, projectsByID{}, "test", nil))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: toolPlatformContext, Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := structured[PlatformContextOutput](t, res)
	assert.Equal(t, 3, out.ActiveProjects)
	assert.Equal(t, []string{"go", "react"}, out.TopSkills)
	assert.Equal(t, "2024-05-01T10:00:00Z", out.GeneratedAt)
	assert.Contains(t, out.Context, "Most demanded skills: go, react")
}

func TestServer_ScoreMatch(t *testing.T) {
	applicantID, projectID := uuid.New(), uuid.New()
	applicants := applicantsByID{byUser: map[uuid.UUID]profile.ApplicantProfile{
		applicantID: {
			Skills:           []profile.Skill{{Name: "Go", Level: 85}},
			ExperienceLevel:  profile.ExperienceSenior,
			RemotePreference: profile.RemoteRemote,
		},
	}}
	projects := projectsByID{byID: map[uuid.UUID]project.Project{
		projectID: {ID: projectID, Title: "Backend Engineer", RequiredSkills: []string{"go"}, ExperienceLevel: profile.ExperienceSenior},
	}}
	cs := connect(t, New(fixedSnapshot{}, applicants, projects, "test", nil))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      toolScoreMatch,
		Arguments: map[string]any{"applicant_id": applicantID.String(), "project_id": projectID.String()},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := structured[ScoreMatchOutput](t, res)
	assert.Equal(t, 100, out.Score)
	assert.Equal(t, "Backend Engineer", out.Project)

	res, err = cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      toolScoreMatch,
		Arguments: map[string]any{"applicant_id": uuid.NewString(), "project_id": projectID.String()},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
