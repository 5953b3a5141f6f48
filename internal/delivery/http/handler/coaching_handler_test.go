package handler

import (
	"context"
	"net/http"
	"testing"

	"talent-match/internal/domain/profile"
	"talent-match/internal/service/ai"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCoaching struct {
	skill    string
	level    int
	skillErr error
	recsErr  error
	resource string
}

func (s *stubCoaching) Recommendations(context.Context, uuid.UUID) ([]ai.SkillRecommendation, error) {
	return []ai.SkillRecommendation{}, s.recsErr
}
func (s *stubCoaching) UpdateSkill(_ context.Context, _ uuid.UUID, name string, level int) (profile.ApplicantProfile, error) {
	s.skill, s.level = name, level
	return profile.ApplicantProfile{}, s.skillErr
}
func (s *stubCoaching) Resources(name string) []usecase.Resource {
	s.resource = name
	return []usecase.Resource{{Title: name + " Fundamentals"}}
}
func (s *stubCoaching) Analytics(context.Context, uuid.UUID) (usecase.SkillAnalytics, error) {
	return usecase.SkillAnalytics{TotalSkills: 3}, nil
}

func TestCoachingHandler(t *testing.T) {
	s := &stubCoaching{}
	app, mw := newTestApp()
	NewCoachingHandler(s).RegisterRoutes(app.Group("/coaching", mw.Middleware()))
	uid := uuid.New()
	base := "/coaching/" + uid.String()

	resp, _ := doJSON(t, app, http.MethodGet, "/coaching/"+uuid.NewString()+"/analytics", uid, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodGet, base+"/analytics", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"totalSkills":3`)

	resp, _ = doJSON(t, app, http.MethodPut, base+"/skills/Go", uid, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, base+"/skills/Node.js", uid, map[string]any{"level": 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Node.js", s.skill)
	assert.Equal(t, 0, s.level)

	s.skillErr = usecase.ErrInvalidSkillLevel
	resp, env = doJSON(t, app, http.MethodPut, base+"/skills/Go", uid, map[string]any{"level": 120})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Skill level must be between 0 and 100", env.Message)

	s.skillErr = profile.ErrNotFound
	resp, _ = doJSON(t, app, http.MethodPut, base+"/skills/Go", uid, map[string]any{"level": 50})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, base+"/resources/C%23", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "C#", s.resource)
	body := decodeData[map[string][]usecase.Resource](t, env)
	require.Len(t, body["resources"], 1)

	s.recsErr = profile.ErrNotFound
	resp, env = doJSON(t, app, http.MethodGet, base+"/recommendations", uid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Profile not found", env.Message)
}
