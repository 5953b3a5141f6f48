package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"
	"time"

	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/service/ai"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	marketTrendsTop = 10
	skillMilestone  = 80
	improvingFloor  = 50
	improveBelow    = 70
	strongestLimit  = 5
	improveLimit    = 3
	improveStep     = 20
)

// SkillCoach produces AI skill recommendations for a profile.
type SkillCoach interface {
	GenerateSkillRecommendations(ctx context.Context, applicant profile.ApplicantProfile, trends []string) []ai.SkillRecommendation
}

type Resource struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Provider string  `json:"provider"`
	URL      string  `json:"url"`
	Free     bool    `json:"free"`
	Duration string  `json:"duration"`
	Rating   float64 `json:"rating"`
}

type SkillLevel struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Target int    `json:"target,omitempty"`
}

type SkillAnalytics struct {
	TotalSkills         int          `json:"totalSkills"`
	AverageLevel        int          `json:"averageLevel"`
	ExpertSkills        int          `json:"expertSkills"`
	ImprovingSkills     int          `json:"improvingSkills"`
	BeginnerSkills      int          `json:"beginnerSkills"`
	ProfileCompleteness int          `json:"profileCompleteness"`
	StrongestSkills     []SkillLevel `json:"strongestSkills"`
	SkillsToImprove     []SkillLevel `json:"skillsToImprove"`
}

type CoachingUsecase struct {
	applicants profile.ApplicantRepository
	projects   project.Repository
	coach      SkillCoach
	cache      Cache
	notifier   Notifier
	logger     *zap.Logger
}

func NewCoachingUsecase(applicants profile.ApplicantRepository, projects project.Repository, coach SkillCoach, cache Cache, notifier Notifier, logger *zap.Logger) *CoachingUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachingUsecase{
		applicants: applicants,
		projects:   projects,
		coach:      coach,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
	}
}

func (u *CoachingUsecase) Recommendations(ctx context.Context, userID uuid.UUID) ([]ai.SkillRecommendation, error) {
	p, err := u.applicants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	trends, err := u.MarketTrends(ctx)
	if err != nil {
		return nil, err
	}
	return u.coach.GenerateSkillRecommendations(ctx, p, trends), nil
}

// MarketTrends returns the most demanded skills across active projects,
// reading through the cache. Concurrent misses wait briefly for whoever holds
// the rebuild lock before computing on their own.
func (u *CoachingUsecase) MarketTrends(ctx context.Context) ([]string, error) {
	if u.cache != nil {
		var cached []string
		if hit, err := u.cache.GetJSON(ctx, marketTrendsKey, &cached); err == nil && hit {
			u.logger.Debug("market trends cache hit")
			return cached, nil
		}

		lock := lockKey(marketTrendsKey)
		ok, err := u.cache.SetIfNotExists(ctx, lock, "1", 30*time.Second)
		switch {
		case err == nil && ok:
			defer func() {
				if err := u.cache.Delete(ctx, lock); err != nil {
					u.logger.Warn("release market trends lock failed", zap.Error(err))
				}
			}()
		case err == nil:
			wait := time.NewTimer(300*time.Millisecond + time.Duration(rand.IntN(200))*time.Millisecond)
			select {
			case <-ctx.Done():
				wait.Stop()
				return nil, ctx.Err()
			case <-wait.C:
			}
			if hit, err := u.cache.GetJSON(ctx, marketTrendsKey, &cached); err == nil && hit {
				return cached, nil
			}
		}
	}

	// Demand is ranked over every active project; the result is cached.
	active, err := u.projects.ListByStatus(ctx, project.StatusActive, 0)
	if err != nil {
		return nil, err
	}
	trends := project.RankSkillDemand(active, marketTrendsTop)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, marketTrendsKey, trends, marketTrendsTTL); err != nil {
			u.logger.Warn("cache market trends failed", zap.Error(err))
		}
	}
	return trends, nil
}

func (u *CoachingUsecase) UpdateSkill(ctx context.Context, userID uuid.UUID, skillName string, level int) (profile.ApplicantProfile, error) {
	if level < 0 || level > 100 {
		return profile.ApplicantProfile{}, ErrInvalidSkillLevel
	}
	skillName = strings.TrimSpace(skillName)
	if skillName == "" {
		return profile.ApplicantProfile{}, ErrInvalidInput
	}

	p, err := u.applicants.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ApplicantProfile{}, err
	}
	p.UpsertSkill(skillName, level)
	p.ProfileScore = p.CompletenessScore()

	saved, err := u.applicants.Upsert(ctx, p)
	if err != nil {
		return profile.ApplicantProfile{}, err
	}

	if level >= skillMilestone && u.notifier != nil {
		u.notifier.Notify(ctx, notification.Notification{
			UserID:  userID,
			Type:    notification.TypeSkillRecommendation,
			Title:   "Skill Milestone Achieved!",
			Message: fmt.Sprintf("Congratulations! You've reached %d%% proficiency in %s", level, skillName),
			Data:    map[string]any{"skill": skillName, "level": level},
		})
	}
	return saved, nil
}

func (u *CoachingUsecase) Resources(skillName string) []Resource {
	return []Resource{
		{
			Title:    skillName + " Fundamentals",
			Type:     "course",
			Provider: "Coursera",
			URL:      "https://coursera.org/search?query=" + url.QueryEscape(skillName),
			Duration: "4-6 weeks",
			Rating:   4.5,
		},
		{
			Title:    "Learn " + skillName,
			Type:     "tutorial",
			Provider: "freeCodeCamp",
			URL:      "https://freecodecamp.org",
			Free:     true,
			Duration: "2-3 weeks",
			Rating:   4.7,
		},
		{
			Title:    skillName + " Certification",
			Type:     "certification",
			Provider: "Microsoft",
			URL:      "https://learn.microsoft.com",
			Duration: "1-2 months",
			Rating:   4.6,
		},
		{
			Title:    skillName + " Documentation",
			Type:     "documentation",
			Provider: "Official Docs",
			URL:      "#",
			Free:     true,
			Duration: "Self-paced",
			Rating:   4.8,
		},
	}
}

func (u *CoachingUsecase) Analytics(ctx context.Context, userID uuid.UUID) (SkillAnalytics, error) {
	p, err := u.applicants.GetByUserID(ctx, userID)
	if err != nil {
		return SkillAnalytics{}, err
	}
	return AnalyzeSkills(p), nil
}

// AnalyzeSkills summarises skill levels. Expert is >= 80, improving 50..79,
// beginner below 50.
func AnalyzeSkills(p profile.ApplicantProfile) SkillAnalytics {
	out := SkillAnalytics{
		TotalSkills:         len(p.Skills),
		ProfileCompleteness: p.ProfileScore,
		StrongestSkills:     []SkillLevel{},
		SkillsToImprove:     []SkillLevel{},
	}
	if len(p.Skills) == 0 {
		return out
	}

	sum := 0
	for _, s := range p.Skills {
		sum += s.Level
		switch {
		case s.Level >= skillMilestone:
			out.ExpertSkills++
		case s.Level >= improvingFloor:
			out.ImprovingSkills++
		default:
			out.BeginnerSkills++
		}
	}
	out.AverageLevel = int(math.Round(float64(sum) / float64(len(p.Skills))))

	sorted := append([]profile.Skill(nil), p.Skills...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level > sorted[j].Level })
	for _, s := range sorted[:min(strongestLimit, len(sorted))] {
		out.StrongestSkills = append(out.StrongestSkills, SkillLevel{Name: s.Name, Level: s.Level})
	}

	weak := make([]profile.Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Level < improveBelow {
			weak = append(weak, s)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Level < weak[j].Level })
	for _, s := range weak[:min(improveLimit, len(weak))] {
		out.SkillsToImprove = append(out.SkillsToImprove, SkillLevel{Name: s.Name, Level: s.Level, Target: min(100, s.Level+improveStep)})
	}
	return out
}
