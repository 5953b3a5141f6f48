// Package mcpserver exposes read-only platform tools over the Model Context
// Protocol so assistants can pull marketplace context and score matches.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/service/platform"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName = "talent-match"

	toolPlatformContext = "get_platform_context"
	toolScoreMatch      = "score_match"
)

type SnapshotSource interface {
	Snapshot(ctx context.Context) (platform.Snapshot, error)
}

type PlatformContextInput struct{}

type PlatformContextOutput struct {
	Context        string   `json:"context" jsonschema:"plain-text platform summary for prompting"`
	ActiveProjects int      `json:"active_projects"`
	TopSkills      []string `json:"top_skills"`
	GeneratedAt    string   `json:"generated_at" jsonschema:"RFC 3339 timestamp"`
}

type ScoreMatchInput struct {
	ApplicantID string `json:"applicant_id" jsonschema:"user id of the applicant"`
	ProjectID   string `json:"project_id" jsonschema:"id of the project"`
}

type ScoreMatchOutput struct {
	Score     int                `json:"score"`
	Insights  matching.Insights  `json:"insights"`
	Breakdown matching.Breakdown `json:"breakdown"`
	Project   string             `json:"project"`
}

type Server struct {
	snapshots  SnapshotSource
	applicants profile.ApplicantRepository
	projects   project.Repository
	logger     *zap.Logger
	version    string
}

func New(snapshots SnapshotSource, applicants profile.ApplicantRepository, projects project.Repository, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if version == "" {
		version = "dev"
	}
	return &Server{snapshots: snapshots, applicants: applicants, projects: projects, version: version, logger: logger}
}

// MCP builds the protocol server with both tools registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: s.version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolPlatformContext,
		Description: "Summarise the marketplace: number of active projects, the most demanded skills and the latest postings.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.platformContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolScoreMatch,
		Description: "Score an applicant against a project with the deterministic matcher (skills 40, experience 30, location 20, certifications 10).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.scoreMatch)

	return server
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("transport", "stdio"))
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) platformContext(ctx context.Context, _ *mcp.CallToolRequest, _ PlatformContextInput) (*mcp.CallToolResult, PlatformContextOutput, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.logger.Error("platform snapshot failed", zap.Error(err))
		return nil, PlatformContextOutput{}, err
	}
	return nil, PlatformContextOutput{
		Context:        snap.String(),
		ActiveProjects: snap.ActiveProjects,
		TopSkills:      nonNil(snap.TopSkills),
		GeneratedAt:    snap.GeneratedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Server) scoreMatch(ctx context.Context, _ *mcp.CallToolRequest, in ScoreMatchInput) (*mcp.CallToolResult, ScoreMatchOutput, error) {
	applicantID, err := uuid.Parse(strings.TrimSpace(in.ApplicantID))
	if err != nil {
		return nil, ScoreMatchOutput{}, fmt.Errorf("applicant_id: %w", err)
	}
	projectID, err := uuid.Parse(strings.TrimSpace(in.ProjectID))
	if err != nil {
		return nil, ScoreMatchOutput{}, fmt.Errorf("project_id: %w", err)
	}

	applicant, err := s.applicants.GetByUserID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ScoreMatchOutput{}, fmt.Errorf("no applicant profile for %s", applicantID)
		}
		return nil, ScoreMatchOutput{}, err
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, ScoreMatchOutput{}, fmt.Errorf("no project %s", projectID)
		}
		return nil, ScoreMatchOutput{}, err
	}

	res := matching.Calculate(applicant, p)
	return nil, ScoreMatchOutput{
		Score:     res.Score,
		Insights:  res.Insights.Normalize(),
		Breakdown: res.Breakdown,
		Project:   p.Title,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
