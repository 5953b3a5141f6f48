package ai

import (
	"context"
	"errors"

	"talent-match/internal/domain/cv"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/infrastructure/llm"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SourceModel    = "ai"
	SourceFallback = "fallback"

	maxJobRecommendations = 5
	assistantSystemPrompt = "You are a helpful assistant."
)

var ErrUnavailable = errors.New("ai provider unavailable")

type MatchResult struct {
	Score    int               `json:"score"`
	Insights matching.Insights `json:"insights"`
	Source   string            `json:"source"`
}

type LearningResource struct {
	Title    string `json:"title" mapstructure:"title"`
	Type     string `json:"type" mapstructure:"type"`
	Provider string `json:"provider,omitempty" mapstructure:"provider"`
	URL      string `json:"url,omitempty" mapstructure:"url"`
	Free     bool   `json:"free" mapstructure:"free"`
}

type SkillRecommendation struct {
	Skill     string             `json:"skill" mapstructure:"skill"`
	Priority  string             `json:"priority" mapstructure:"priority"`
	Reason    string             `json:"reason" mapstructure:"reason"`
	Resources []LearningResource `json:"resources" mapstructure:"resources"`
}

type JobRecommendation struct {
	ProjectID  uuid.UUID `json:"project_id"`
	MatchScore int       `json:"match_score"`
	Reasons    []string  `json:"reasons"`
}

// Service wraps a chat provider. A nil provider is valid: scoring falls back to
// the deterministic engine and recommendations come back empty.
type Service struct {
	llm    llm.Client
	logger *zap.Logger
}

func New(client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{llm: client, logger: logger}
}

func (s *Service) Enabled() bool {
	return s != nil && s.llm != nil
}

// CalculateMatchScore asks the model for a score and falls back to matching.Calculate
// on any provider, parse or range failure.
func (s *Service) CalculateMatchScore(ctx context.Context, applicant profile.ApplicantProfile, job project.Project) MatchResult {
	fallback := func(reason error) MatchResult {
		if reason != nil {
			s.logger.Warn("ai match scoring failed, using fallback",
				zap.String("project_id", job.ID.String()),
				zap.Error(reason),
			)
		}
		r := matching.Calculate(applicant, job)
		return MatchResult{Score: r.Score, Insights: r.Insights, Source: SourceFallback}
	}

	if !s.Enabled() {
		return fallback(nil)
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		Prompt:      matchScorePrompt(applicant, job),
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return fallback(err)
	}

	var out struct {
		Score    float64           `mapstructure:"score"`
		Insights matching.Insights `mapstructure:"insights"`
	}
	if err := decode(content, matchScoreSchema, &out); err != nil {
		return fallback(err)
	}
	return MatchResult{
		Score:    roundScore(out.Score),
		Insights: out.Insights.Normalize(),
		Source:   SourceModel,
	}
}

// GenerateSkillRecommendations never fails; problems yield an empty list.
func (s *Service) GenerateSkillRecommendations(ctx context.Context, applicant profile.ApplicantProfile, trends []string) []SkillRecommendation {
	out := []SkillRecommendation{}
	if !s.Enabled() {
		return out
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		Prompt:      skillRecommendationsPrompt(applicant, trends),
		Temperature: 0.4,
		MaxTokens:   1500,
	})
	if err != nil {
		s.logger.Warn("ai skill recommendations failed", zap.Error(err))
		return out
	}

	var parsed struct {
		Recommendations []SkillRecommendation `mapstructure:"recommendations"`
	}
	if err := decode(content, skillRecommendationsSchema, &parsed); err != nil {
		s.logger.Warn("ai skill recommendations unparsable", zap.Error(err))
		return out
	}
	for _, r := range parsed.Recommendations {
		if r.Resources == nil {
			r.Resources = []LearningResource{}
		}
		out = append(out, r)
	}
	return out
}

// GenerateJobRecommendations returns at most five picks, each referring to one of jobs.
func (s *Service) GenerateJobRecommendations(ctx context.Context, applicant profile.ApplicantProfile, jobs []project.Project) []JobRecommendation {
	out := []JobRecommendation{}
	if !s.Enabled() || len(jobs) == 0 {
		return out
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		Prompt:      jobRecommendationsPrompt(applicant, jobs),
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		s.logger.Warn("ai job recommendations failed", zap.Error(err))
		return out
	}

	var parsed struct {
		Recommendations []struct {
			ProjectID  string   `mapstructure:"project_id"`
			MatchScore float64  `mapstructure:"match_score"`
			Reasons    []string `mapstructure:"reasons"`
		} `mapstructure:"recommendations"`
	}
	if err := decode(content, jobRecommendationsSchema, &parsed); err != nil {
		s.logger.Warn("ai job recommendations unparsable", zap.Error(err))
		return out
	}

	offered := make(map[uuid.UUID]struct{}, len(jobs))
	for _, j := range jobs {
		offered[j.ID] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{})
	for _, r := range parsed.Recommendations {
		id, err := uuid.Parse(r.ProjectID)
		if err != nil {
			continue
		}
		if _, ok := offered[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, JobRecommendation{ProjectID: id, MatchScore: roundScore(r.MatchScore), Reasons: reasons})
		if len(out) == maxJobRecommendations {
			break
		}
	}
	return out
}

// ExtractCV turns raw CV text into structured fields.
func (s *Service) ExtractCV(ctx context.Context, text string) (cv.Extracted, error) {
	if !s.Enabled() {
		return cv.Extracted{}, ErrUnavailable
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		System:      assistantSystemPrompt,
		Prompt:      cvExtractionPrompt(text),
		Temperature: 1,
		MaxTokens:   4096,
	})
	if err != nil {
		return cv.Extracted{}, err
	}

	var out cv.Extracted
	if err := decode(content, cvExtractionSchema, &out); err != nil {
		return cv.Extracted{}, err
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.WorkExperience == nil {
		out.WorkExperience = []cv.WorkExperience{}
	}
	if out.Education == nil {
		out.Education = []cv.Education{}
	}
	return out, nil
}

// Ask sends a free-form prompt with the generic assistant persona.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	if !s.Enabled() {
		return "", ErrUnavailable
	}
	return s.llm.Complete(ctx, llm.Request{
		System:      assistantSystemPrompt,
		Prompt:      prompt,
		Temperature: 1,
		MaxTokens:   4096,
	})
}

func roundScore(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v + 0.5)
}
