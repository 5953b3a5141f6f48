package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/domain/user"
	"talent-match/internal/service/ai"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recommendationPoolSize = 20

// Matcher scores an applicant against a project.
type Matcher interface {
	CalculateMatchScore(ctx context.Context, applicant profile.ApplicantProfile, job project.Project) ai.MatchResult
	GenerateJobRecommendations(ctx context.Context, applicant profile.ApplicantProfile, jobs []project.Project) []ai.JobRecommendation
}

// TxRunner runs fn against a transactional querier. Repos are built per call
// through the factory so the insert and the counter bump commit together.
type TxRunner func(ctx context.Context, fn func(q database.Querier) error) error

type ApplicationRepos func(q database.Querier) (application.Repository, project.Repository)

type ApplicationProjectView struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	SalaryRange profile.Salary `json:"salary_range"`
	Status      project.Status `json:"status"`
}

type ApplicationWithProject struct {
	application.Application
	Project *ApplicationProjectView `json:"project"`
}

type JobRecommendationView struct {
	ai.JobRecommendation
	Project *project.Project `json:"project"`
}

type ApplyInput struct {
	ProjectID   uuid.UUID
	CoverLetter string
}

type ApplicationUsecase struct {
	users        user.Repository
	projects     project.Repository
	applications application.Repository
	applicants   profile.ApplicantRepository
	matcher      Matcher
	notifier     Notifier
	tx           TxRunner
	txRepos      ApplicationRepos
	logger       *zap.Logger
}

func NewApplicationUsecase(users user.Repository, projects project.Repository, applications application.Repository, applicants profile.ApplicantRepository, matcher Matcher, notifier Notifier, logger *zap.Logger) *ApplicationUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationUsecase{
		users:        users,
		projects:     projects,
		applications: applications,
		applicants:   applicants,
		matcher:      matcher,
		notifier:     notifier,
		logger:       logger,
	}
}

// WithTx makes Apply store the application and bump the project counter atomically.
func (u *ApplicationUsecase) WithTx(run TxRunner, repos ApplicationRepos) *ApplicationUsecase {
	u.tx = run
	u.txRepos = repos
	return u
}

func (u *ApplicationUsecase) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]ApplicationWithProject, error) {
	apps, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ProjectID)
	}
	projects, err := u.projects.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ApplicationWithProject, 0, len(apps))
	for _, a := range apps {
		item := ApplicationWithProject{Application: a}
		if p, ok := projects[a.ProjectID]; ok {
			item.Project = &ApplicationProjectView{
				ID:          p.ID,
				Title:       p.Title,
				Company:     p.Company,
				Location:    p.Location,
				SalaryRange: p.SalaryRange,
				Status:      p.Status,
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *ApplicationUsecase) Apply(ctx context.Context, callerID uuid.UUID, in ApplyInput) (application.Application, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return application.Application{}, ErrUnauthorized
		}
		return application.Application{}, err
	}
	if !caller.IsApplicant() {
		return application.Application{}, ErrApplicantOnly
	}

	exists, err := u.applications.Exists(ctx, callerID, in.ProjectID)
	if err != nil {
		return application.Application{}, err
	}
	if exists {
		return application.Application{}, application.ErrAlreadyApplied
	}

	job, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return application.Application{}, err
	}
	applicant, err := u.applicants.GetByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return application.Application{}, ErrProfileIncomplete
		}
		return application.Application{}, err
	}

	match := u.matcher.CalculateMatchScore(ctx, applicant, job)
	u.logger.Info("application scored",
		zap.String("project_id", job.ID.String()),
		zap.Int("score", match.Score),
		zap.String("source", match.Source),
	)

	draft := application.Application{
		ApplicantID: callerID,
		ProjectID:   job.ID,
		Status:      application.StatusPending,
		MatchScore:  match.Score,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		AIInsights:  match.Insights,
	}

	var created application.Application
	store := func(apps application.Repository, projects project.Repository) error {
		var err error
		created, err = apps.Create(ctx, draft)
		if err != nil {
			return err
		}
		return projects.IncrementApplications(ctx, job.ID)
	}
	if u.tx != nil && u.txRepos != nil {
		err = u.tx(ctx, func(q database.Querier) error {
			return store(u.txRepos(q))
		})
	} else {
		err = store(u.applications, u.projects)
	}
	if err != nil {
		return application.Application{}, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, notification.Notification{
			UserID:  job.RecruiterID,
			Type:    notification.TypeNewMatch,
			Title:   "New Application",
			Message: fmt.Sprintf("%s applied to %s with %d%% match", caller.FullName, job.Title, match.Score),
			Data: map[string]any{
				"applicationId": created.ID.String(),
				"projectId":     job.ID.String(),
				"matchScore":    match.Score,
			},
		})
	}
	return created, nil
}

// Recommendations asks the model to pick from up to twenty active projects.
func (u *ApplicationUsecase) Recommendations(ctx context.Context, applicantID uuid.UUID) ([]JobRecommendationView, error) {
	applicant, err := u.applicants.GetByUserID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	active, err := u.projects.ListByStatus(ctx, project.StatusActive, recommendationPoolSize)
	if err != nil {
		return nil, err
	}

	recs := u.matcher.GenerateJobRecommendations(ctx, applicant, active)
	byID := make(map[uuid.UUID]project.Project, len(active))
	for _, p := range active {
		byID[p.ID] = p
	}

	out := make([]JobRecommendationView, 0, len(recs))
	for _, r := range recs {
		view := JobRecommendationView{JobRecommendation: r}
		if p, ok := byID[r.ProjectID]; ok {
			view.Project = &p
		}
		out = append(out, view)
	}
	return out, nil
}

// UpdateStatus lets the owning recruiter move an application through the pipeline.
func (u *ApplicationUsecase) UpdateStatus(ctx context.Context, callerID, applicationID uuid.UUID, status application.Status, feedback string) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, err
	}

	job, err := u.projects.GetByID(ctx, a.ProjectID)
	if err != nil {
		return application.Application{}, err
	}
	if job.RecruiterID != callerID {
		return application.Application{}, ErrNotAuthorized
	}
	if !status.Valid() {
		return application.Application{}, ErrInvalidStatus
	}

	updated, err := u.applications.UpdateStatus(ctx, applicationID, status, strings.TrimSpace(feedback))
	if err != nil {
		return application.Application{}, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, notification.Notification{
			UserID:  updated.ApplicantID,
			Type:    notification.TypeApplicationStatus,
			Title:   "Application Status Update",
			Message: fmt.Sprintf("Your application for %s has been %s", job.Title, status),
			Data: map[string]any{
				"applicationId": updated.ID.String(),
				"status":        string(status),
			},
		})
	}
	return updated, nil
}
