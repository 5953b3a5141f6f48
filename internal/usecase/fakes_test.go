package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/cv"
	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/domain/user"
	"talent-match/internal/service/ai"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.User{}, user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) FindByGoogleIDOrEmail(_ context.Context, googleID, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if googleID != "" && u.GoogleID == googleID {
			return u, nil
		}
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) SetGoogleID(_ context.Context, id uuid.UUID, googleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.GoogleID = googleID
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role user.Role, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = role
	u.ProfileCompleted = completed
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) SetProfileCompleted(_ context.Context, id uuid.UUID, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.ProfileCompleted = completed
	m.users[id] = u
	return nil
}

type mockApplicantRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]profile.ApplicantProfile
}

func newMockApplicantRepo(ps ...profile.ApplicantProfile) *mockApplicantRepo {
	m := &mockApplicantRepo{profiles: map[uuid.UUID]profile.ApplicantProfile{}}
	for _, p := range ps {
		m.profiles[p.UserID] = p
	}
	return m
}

func (m *mockApplicantRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.ApplicantProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return profile.ApplicantProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockApplicantRepo) Upsert(_ context.Context, p profile.ApplicantProfile) (profile.ApplicantProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ApplyDefaults()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.profiles[p.UserID] = p
	return p, nil
}

func (m *mockApplicantRepo) ListByUserIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]profile.ApplicantProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]profile.ApplicantProfile{}
	for _, id := range ids {
		if p, ok := m.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type mockRecruiterRepo struct {
	profiles map[uuid.UUID]profile.RecruiterProfile
}

func newMockRecruiterRepo() *mockRecruiterRepo {
	return &mockRecruiterRepo{profiles: map[uuid.UUID]profile.RecruiterProfile{}}
}

func (m *mockRecruiterRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.RecruiterProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return profile.RecruiterProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockRecruiterRepo) Upsert(_ context.Context, p profile.RecruiterProfile) (profile.RecruiterProfile, error) {
	p.ApplyDefaults()
	m.profiles[p.UserID] = p
	return p, nil
}

type mockProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]project.Project
	order    []uuid.UUID
}

func newMockProjectRepo(ps ...project.Project) *mockProjectRepo {
	m := &mockProjectRepo{projects: map[uuid.UUID]project.Project{}}
	for _, p := range ps {
		m.projects[p.ID] = p
		m.order = append(m.order, p.ID)
	}
	return m
}

func (m *mockProjectRepo) Create(_ context.Context, p project.Project) (project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ApplyDefaults()
	p.ID = uuid.New()
	m.projects[p.ID] = p
	m.order = append(m.order, p.ID)
	return p, nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (m *mockProjectRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]project.Project{}
	for _, id := range ids {
		if p, ok := m.projects[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockProjectRepo) Update(_ context.Context, p project.Project) (project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[p.ID]; !ok {
		return project.Project{}, project.ErrNotFound
	}
	m.projects[p.ID] = p
	return p, nil
}

func (m *mockProjectRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []project.Project
	for _, id := range m.order {
		if p := m.projects[id]; p.RecruiterID == recruiterID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) ListByStatus(_ context.Context, status project.Status, limit int) ([]project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []project.Project
	for _, id := range m.order {
		if p := m.projects[id]; p.Status == status && (limit <= 0 || len(out) < limit) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) IncrementApplications(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return project.ErrNotFound
	}
	p.ApplicationsCount++
	m.projects[id] = p
	return nil
}

type mockApplicationRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]application.Application
}

func newMockApplicationRepo(as ...application.Application) *mockApplicationRepo {
	m := &mockApplicationRepo{apps: map[uuid.UUID]application.Application{}}
	for _, a := range as {
		m.apps[a.ID] = a
	}
	return m
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.apps {
		if existing.ApplicantID == a.ApplicantID && existing.ProjectID == a.ProjectID {
			return application.Application{}, application.ErrAlreadyApplied
		}
	}
	a.ID = uuid.New()
	m.apps[a.ID] = a
	return a, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) Exists(_ context.Context, applicantID, projectID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.ApplicantID == applicantID && a.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []application.Application
	for _, a := range m.apps {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []application.Application
	for _, a := range m.apps {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	// best match first
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].MatchScore > out[j-1].MatchScore; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status, feedback string) (application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	a.InterviewFeedback = feedback
	m.apps[id] = a
	return a, nil
}

func (m *mockApplicationRepo) ScheduleInterview(_ context.Context, id uuid.UUID, at time.Time) (application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = application.StatusInterviewed
	a.InterviewScheduled = &at
	m.apps[id] = a
	return a, nil
}

type mockNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
	err   error
}

func (m *mockNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return notification.Notification{}, m.err
	}
	n.ID = uuid.New()
	m.items = append(m.items, n)
	return n, nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if m.items[i].UserID == userID {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, userID, id uuid.UUID) (notification.Notification, error) {
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].UserID == userID {
			m.items[i].Read = true
			return m.items[i], nil
		}
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for i := range m.items {
		if m.items[i].UserID == userID && !m.items[i].Read {
			m.items[i].Read = true
			n++
		}
	}
	return n, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, it := range m.items {
		if it.UserID == userID && !it.Read {
			n++
		}
	}
	return n, nil
}

func (m *mockNotificationRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(m.items))
	m.items = nil
	return n, nil
}

// recordingNotifier captures notifications sent by other usecases.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notification.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) last() notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return notification.Notification{}
	}
	return r.sent[len(r.sent)-1]
}

type stubMatcher struct {
	result ai.MatchResult
	recs   []ai.JobRecommendation
	offers int
}

func (s *stubMatcher) CalculateMatchScore(context.Context, profile.ApplicantProfile, project.Project) ai.MatchResult {
	return s.result
}

func (s *stubMatcher) GenerateJobRecommendations(_ context.Context, _ profile.ApplicantProfile, jobs []project.Project) []ai.JobRecommendation {
	s.offers = len(jobs)
	return s.recs
}

type mockCache struct {
	mu     sync.Mutex
	values map[string][]byte
	locks  map[string]bool
	sets   int
}

func newMockCache() *mockCache {
	return &mockCache{values: map[string][]byte{}, locks: map[string]bool{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = b
	m.sets++
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.locks, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

type mockCVRepo struct {
	saved []cv.CV
	err   error
}

func (m *mockCVRepo) Create(_ context.Context, c cv.CV) (cv.CV, error) {
	if m.err != nil {
		return cv.CV{}, m.err
	}
	c.ID = uuid.New()
	m.saved = append(m.saved, c)
	return c, nil
}

func (m *mockCVRepo) GetByID(_ context.Context, id uuid.UUID) (cv.CV, error) {
	for _, c := range m.saved {
		if c.ID == id {
			return c, nil
		}
	}
	return cv.CV{}, cv.ErrNotFound
}
