package usecase

import (
	"context"
	"fmt"
	"testing"

	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/service/ai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCoach struct {
	trends []string
	recs   []ai.SkillRecommendation
}

func (s *stubCoach) GenerateSkillRecommendations(_ context.Context, _ profile.ApplicantProfile, trends []string) []ai.SkillRecommendation {
	s.trends = trends
	return s.recs
}

func coachingFixture(ps ...profile.ApplicantProfile) (*CoachingUsecase, *mockApplicantRepo, *mockProjectRepo, *mockCache, *stubCoach, *recordingNotifier) {
	applicants := newMockApplicantRepo(ps...)
	projects := newMockProjectRepo(
		project.Project{ID: uuid.New(), Status: project.StatusActive, RequiredSkills: []string{"Go", "SQL"}, PreferredSkills: []string{"Docker"}},
		project.Project{ID: uuid.New(), Status: project.StatusActive, RequiredSkills: []string{"go"}},
		project.Project{ID: uuid.New(), Status: project.StatusClosed, RequiredSkills: []string{"COBOL", "COBOL"}},
	)
	cache := newMockCache()
	coach := &stubCoach{recs: []ai.SkillRecommendation{{Skill: "Docker", Priority: "high"}}}
	notifier := &recordingNotifier{}
	return NewCoachingUsecase(applicants, projects, coach, cache, notifier, nil), applicants, projects, cache, coach, notifier
}

func TestCoachingUsecase_Recommendations(t *testing.T) {
	userID := uuid.New()
	uc, _, _, cache, coach, _ := coachingFixture(profile.ApplicantProfile{UserID: userID})
	ctx := context.Background()

	recs, err := uc.Recommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Docker", recs[0].Skill)
	assert.Equal(t, []string{"go", "sql", "docker"}, coach.trends)

	var cached []string
	hit, err := cache.GetJSON(ctx, marketTrendsKey, &cached)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, coach.trends, cached)
	assert.False(t, cache.locks[lockKey(marketTrendsKey)], "rebuild lock is released")

	_, err = uc.Recommendations(ctx, uuid.New())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestCoachingUsecase_MarketTrendsFromCache(t *testing.T) {
	uc, _, _, cache, _, _ := coachingFixture()
	ctx := context.Background()
	require.NoError(t, cache.SetJSON(ctx, marketTrendsKey, []string{"rust"}, 0))

	trends, err := uc.MarketTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, trends)
	assert.Equal(t, 1, cache.sets)
}

func TestCoachingUsecase_MarketTrendsCountsEveryActiveProject(t *testing.T) {
	var ps []project.Project
	for i := 0; i < 550; i++ {
		ps = append(ps, project.Project{ID: uuid.New(), Status: project.StatusActive, RequiredSkills: []string{fmt.Sprintf("skill%02d", i%11)}})
	}
	for i := 0; i < 60; i++ {
		ps = append(ps, project.Project{ID: uuid.New(), Status: project.StatusActive, RequiredSkills: []string{"Kubernetes"}})
	}
	uc := NewCoachingUsecase(newMockApplicantRepo(), newMockProjectRepo(ps...), &stubCoach{}, nil, nil, nil)

	trends, err := uc.MarketTrends(context.Background())
	require.NoError(t, err)
	require.Len(t, trends, marketTrendsTop)
	assert.Equal(t, "kubernetes", trends[0])
}

func TestCoachingUsecase_MarketTrendsLockWaitHonoursContext(t *testing.T) {
	uc, _, _, cache, _, _ := coachingFixture()
	cache.locks[lockKey(marketTrendsKey)] = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trends, err := uc.MarketTrends(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, trends)
}

func TestCoachingUsecase_UpdateSkill(t *testing.T) {
	userID := uuid.New()
	uc, applicants, _, _, _, notifier := coachingFixture(profile.ApplicantProfile{
		UserID: userID,
		Bio:    "dev",
		Skills: []profile.Skill{{Name: "Go", Level: 40}},
	})
	ctx := context.Background()

	p, err := uc.UpdateSkill(ctx, userID, "go", 85)
	require.NoError(t, err)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, 85, p.Skills[0].Level)
	assert.Equal(t, 40, p.ProfileScore)

	n := notifier.last()
	assert.Equal(t, notification.TypeSkillRecommendation, n.Type)
	assert.Equal(t, "Skill Milestone Achieved!", n.Title)
	assert.Equal(t, "Congratulations! You've reached 85% proficiency in go", n.Message)

	p, err = uc.UpdateSkill(ctx, userID, "Kubernetes", 30)
	require.NoError(t, err)
	assert.Len(t, p.Skills, 2)
	assert.False(t, p.Skills[1].Verified)
	assert.Len(t, notifier.sent, 1)

	stored, _ := applicants.GetByUserID(ctx, userID)
	assert.Len(t, stored.Skills, 2)

	for _, lvl := range []int{-1, 101} {
		_, err = uc.UpdateSkill(ctx, userID, "Go", lvl)
		assert.ErrorIs(t, err, ErrInvalidSkillLevel)
	}
	_, err = uc.UpdateSkill(ctx, uuid.New(), "Go", 50)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestCoachingUsecase_Resources(t *testing.T) {
	uc, _, _, _, _, _ := coachingFixture()
	res := uc.Resources("Machine Learning")
	require.Len(t, res, 4)
	assert.Equal(t, "Machine Learning Fundamentals", res[0].Title)
	assert.Equal(t, "https://coursera.org/search?query=Machine+Learning", res[0].URL)
	assert.Equal(t, []string{"Coursera", "freeCodeCamp", "Microsoft", "Official Docs"},
		[]string{res[0].Provider, res[1].Provider, res[2].Provider, res[3].Provider})
	assert.True(t, res[1].Free)
}

func TestAnalyzeSkills(t *testing.T) {
	p := profile.ApplicantProfile{
		ProfileScore: 65,
		Skills: []profile.Skill{
			{Name: "Go", Level: 90},
			{Name: "SQL", Level: 55},
			{Name: "Docker", Level: 20},
			{Name: "Rust", Level: 45},
			{Name: "React", Level: 95},
			{Name: "CSS", Level: 60},
		},
	}

	got := AnalyzeSkills(p)
	assert.Equal(t, 6, got.TotalSkills)
	assert.Equal(t, 61, got.AverageLevel)
	assert.Equal(t, 2, got.ExpertSkills)
	assert.Equal(t, 2, got.ImprovingSkills)
	assert.Equal(t, 2, got.BeginnerSkills)
	assert.Equal(t, 65, got.ProfileCompleteness)
	require.Len(t, got.StrongestSkills, 5)
	assert.Equal(t, "React", got.StrongestSkills[0].Name)
	assert.Equal(t, []SkillLevel{
		{Name: "Docker", Level: 20, Target: 40},
		{Name: "Rust", Level: 45, Target: 65},
		{Name: "SQL", Level: 55, Target: 75},
	}, got.SkillsToImprove)
}

func TestAnalyzeSkills_Empty(t *testing.T) {
	got := AnalyzeSkills(profile.ApplicantProfile{})
	assert.Zero(t, got.AverageLevel)
	assert.NotNil(t, got.StrongestSkills)
	assert.NotNil(t, got.SkillsToImprove)
}
