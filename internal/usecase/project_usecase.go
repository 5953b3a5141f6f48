package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	activeProjectsLimit = 50
	candidateLookups    = 8
	interviewDateLayout = "January 2, 2006"
)

// ProjectPatch carries the fields a recruiter may change; nil means unchanged.
type ProjectPatch struct {
	Title                  *string
	Company                *string
	Description            *string
	Location               *string
	RemoteOption           *project.RemoteOption
	EmploymentType         *project.EmploymentType
	ExperienceLevel        *profile.ExperienceLevel
	RequiredSkills         *[]string
	PreferredSkills        *[]string
	RequiredCertifications *[]string
	SalaryRange            *profile.Salary
	Benefits               *[]string
	Requirements           *[]string
	Responsibilities       *[]string
	Status                 *project.Status
	Priority               *project.Priority
	Deadline               *time.Time
}

func (p ProjectPatch) apply(dst *project.Project) {
	setIf(&dst.Title, p.Title)
	setIf(&dst.Company, p.Company)
	setIf(&dst.Description, p.Description)
	setIf(&dst.Location, p.Location)
	setIf(&dst.RemoteOption, p.RemoteOption)
	setIf(&dst.EmploymentType, p.EmploymentType)
	setIf(&dst.ExperienceLevel, p.ExperienceLevel)
	setIf(&dst.RequiredSkills, p.RequiredSkills)
	setIf(&dst.PreferredSkills, p.PreferredSkills)
	setIf(&dst.RequiredCertifications, p.RequiredCertifications)
	setIf(&dst.SalaryRange, p.SalaryRange)
	setIf(&dst.Benefits, p.Benefits)
	setIf(&dst.Requirements, p.Requirements)
	setIf(&dst.Responsibilities, p.Responsibilities)
	setIf(&dst.Status, p.Status)
	setIf(&dst.Priority, p.Priority)
	if p.Deadline != nil {
		d := *p.Deadline
		dst.Deadline = &d
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

type CandidateApplicant struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type Candidate struct {
	ID          uuid.UUID                 `json:"id"`
	Application application.Application   `json:"application"`
	Applicant   *CandidateApplicant       `json:"applicant"`
	Profile     *profile.ApplicantProfile `json:"profile"`
}

type ProjectUsecase struct {
	users        user.Repository
	projects     project.Repository
	applications application.Repository
	applicants   profile.ApplicantRepository
	notifier     Notifier
	cache        Cache
	logger       *zap.Logger
}

func NewProjectUsecase(users user.Repository, projects project.Repository, applications application.Repository, applicants profile.ApplicantRepository, notifier Notifier, logger *zap.Logger) *ProjectUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectUsecase{
		users:        users,
		projects:     projects,
		applications: applications,
		applicants:   applicants,
		notifier:     notifier,
		logger:       logger,
	}
}

// WithCache drops cached market trends whenever a project is written.
func (u *ProjectUsecase) WithCache(c Cache) *ProjectUsecase {
	u.cache = c
	return u
}

func (u *ProjectUsecase) invalidateTrends(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, marketTrendsKey); err != nil {
		u.logger.Warn("invalidate market trends failed", zap.Error(err))
	}
}

func (u *ProjectUsecase) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]project.Project, error) {
	return u.projects.ListByRecruiter(ctx, recruiterID)
}

func (u *ProjectUsecase) Create(ctx context.Context, callerID uuid.UUID, p project.Project) (project.Project, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return project.Project{}, ErrUnauthorized
		}
		return project.Project{}, err
	}
	if !caller.IsRecruiter() {
		return project.Project{}, ErrRecruiterOnly
	}
	if err := validateProject(p); err != nil {
		return project.Project{}, err
	}

	p.RecruiterID = callerID
	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return project.Project{}, err
	}
	u.invalidateTrends(ctx)
	return created, nil
}

func (u *ProjectUsecase) Update(ctx context.Context, callerID, projectID uuid.UUID, patch ProjectPatch) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return project.Project{}, err
	}
	if p.RecruiterID != callerID {
		return project.Project{}, ErrNotProjectOwner
	}

	patch.apply(&p)
	if err := validateProject(p); err != nil {
		return project.Project{}, err
	}
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return project.Project{}, err
	}
	u.invalidateTrends(ctx)
	return updated, nil
}

// Candidates lists the project's applications best match first, with each
// applicant's account and profile loaded concurrently. Only the recruiter
// that owns the project may see them.
func (u *ProjectUsecase) Candidates(ctx context.Context, callerID, projectID uuid.UUID) ([]Candidate, error) {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.RecruiterID != callerID {
		return nil, ErrNotAuthorized
	}
	apps, err := u.applications.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, len(apps))
	ids := make([]uuid.UUID, 0, len(apps))
	for i, a := range apps {
		out[i] = Candidate{ID: a.ID, Application: a}
		ids = append(ids, a.ApplicantID)
	}

	var profiles map[uuid.UUID]profile.ApplicantProfile
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(candidateLookups)
	g.Go(func() error {
		var err error
		profiles, err = u.applicants.ListByUserIDs(gctx, ids)
		return err
	})
	for i := range out {
		g.Go(func() error {
			usr, err := u.users.GetByID(gctx, out[i].Application.ApplicantID)
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					return nil
				}
				return err
			}
			out[i].Applicant = &CandidateApplicant{ID: usr.ID, FullName: usr.FullName, Email: usr.Email}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range out {
		if p, ok := profiles[out[i].Application.ApplicantID]; ok {
			out[i].Profile = &p
		}
	}
	return out, nil
}

// ScheduleInterview is restricted to the recruiter that owns the project.
func (u *ProjectUsecase) ScheduleInterview(ctx context.Context, callerID, projectID, applicationID uuid.UUID, at time.Time) (application.Application, error) {
	if at.IsZero() {
		return application.Application{}, ErrInterviewDate
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return application.Application{}, err
	}
	if p.RecruiterID != callerID {
		return application.Application{}, ErrNotAuthorized
	}
	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, err
	}
	if a.ProjectID != projectID {
		return application.Application{}, application.ErrNotFound
	}

	updated, err := u.applications.ScheduleInterview(ctx, applicationID, at)
	if err != nil {
		return application.Application{}, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, notification.Notification{
			UserID:  updated.ApplicantID,
			Type:    notification.TypeInterviewScheduled,
			Title:   "Interview Scheduled",
			Message: "Your interview has been scheduled for " + at.UTC().Format(interviewDateLayout),
			Data: map[string]any{
				"applicationId": updated.ID.String(),
				"interviewDate": at.UTC().Format(time.RFC3339),
			},
		})
	}
	return updated, nil
}

func (u *ProjectUsecase) Active(ctx context.Context) ([]project.Summary, error) {
	list, err := u.projects.ListByStatus(ctx, project.StatusActive, activeProjectsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]project.Summary, 0, len(list))
	for _, p := range list {
		out = append(out, p.Summary())
	}
	return out, nil
}

func (u *ProjectUsecase) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return u.projects.GetByID(ctx, id)
}

func validateProject(p project.Project) error {
	if p.Title == "" || p.Company == "" || p.Description == "" || p.Location == "" {
		return ErrInvalidInput
	}
	if !p.RemoteOption.Valid() || !p.EmploymentType.Valid() || !p.ExperienceLevel.Valid() {
		return ErrInvalidInput
	}
	if p.Status != "" && !p.Status.Valid() {
		return ErrInvalidInput
	}
	if p.Priority != "" && !p.Priority.Valid() {
		return ErrInvalidInput
	}
	if p.SalaryRange.Min < 0 || p.SalaryRange.Max < 0 {
		return ErrInvalidInput
	}
	return nil
}
