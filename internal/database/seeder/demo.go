package seeder

import (
	"context"
	"fmt"
	"maps"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is shared by every seeded account.
const DemoPassword = "talentmatch123"

type Account struct {
	Email   string
	Name    string
	Role    user.Role
	Summary string
}

type demoUser struct {
	Account
	recruiter *profile.RecruiterProfile
	applicant *profile.ApplicantProfile
}

type demoProject struct {
	recruiter int
	project   project.Project
}

type demoApplication struct {
	applicant     int
	project       int
	status        application.Status
	score         int
	insights      matching.Insights
	interviewDays int
}

type demoNotification struct {
	user        int
	application int
	n           notification.Notification
}

// DemoSeeder creates two recruiters, four applicants, their projects, one
// application per project and a handful of notifications.
type DemoSeeder struct {
	// Cost is the bcrypt cost for the demo passwords; zero means bcrypt.DefaultCost.
	Cost int
	Now  func() time.Time
}

func (DemoSeeder) Name() string { return "demo" }

// Accounts lists the seeded logins.
func (DemoSeeder) Accounts() []Account {
	out := make([]Account, 0, len(demoUsers))
	for _, u := range demoUsers {
		out = append(out, u.Account)
	}
	return out
}

func (s DemoSeeder) Run(ctx context.Context, db database.DB) error {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		users := repository.NewPostgresUserRepository(q)
		applicants := repository.NewPostgresApplicantProfileRepository(q)
		recruiters := repository.NewPostgresRecruiterProfileRepository(q)
		projects := repository.NewPostgresProjectRepository(q)
		applications := repository.NewPostgresApplicationRepository(q)
		notifications := repository.NewPostgresNotificationRepository(q)

		userIDs := make([]uuid.UUID, len(demoUsers))
		for i, du := range demoUsers {
			u, err := users.Create(ctx, user.User{
				Email:            du.Email,
				FullName:         du.Name,
				Role:             du.Role,
				ProfileCompleted: true,
				PasswordHash:     string(hash),
			})
			if err != nil {
				return fmt.Errorf("user %s: %w", du.Email, err)
			}
			userIDs[i] = u.ID

			switch {
			case du.recruiter != nil:
				p := *du.recruiter
				p.UserID = u.ID
				p.ApplyDefaults()
				if _, err := recruiters.Upsert(ctx, p); err != nil {
					return fmt.Errorf("recruiter profile %s: %w", du.Email, err)
				}
			case du.applicant != nil:
				p := *du.applicant
				p.UserID = u.ID
				p.ApplyDefaults()
				p.ProfileScore = p.CompletenessScore()
				if _, err := applicants.Upsert(ctx, p); err != nil {
					return fmt.Errorf("applicant profile %s: %w", du.Email, err)
				}
			}
		}

		projectIDs := make([]uuid.UUID, len(demoProjects))
		for i, dp := range demoProjects {
			p := dp.project
			p.RecruiterID = userIDs[dp.recruiter]
			p.ApplyDefaults()
			created, err := projects.Create(ctx, p)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Title, err)
			}
			projectIDs[i] = created.ID
		}

		applicationIDs := make([]uuid.UUID, len(demoApplications))
		for i, da := range demoApplications {
			a := application.Application{
				ApplicantID: userIDs[da.applicant],
				ProjectID:   projectIDs[da.project],
				Status:      da.status,
				MatchScore:  da.score,
				AIInsights:  da.insights.Normalize(),
			}
			created, err := applications.Create(ctx, a)
			if err != nil {
				return fmt.Errorf("application %d: %w", i, err)
			}
			if da.interviewDays > 0 {
				created, err = applications.ScheduleInterview(ctx, created.ID, now().AddDate(0, 0, da.interviewDays))
				if err != nil {
					return fmt.Errorf("schedule interview %d: %w", i, err)
				}
			}
			if err := projects.IncrementApplications(ctx, a.ProjectID); err != nil {
				return err
			}
			applicationIDs[i] = created.ID
		}
		if _, err := q.Exec(ctx, `UPDATE projects SET matches_count = applications_count`); err != nil {
			return err
		}

		for _, dn := range demoNotifications {
			n := dn.n
			n.UserID = userIDs[dn.user]
			n.Data = maps.Clone(dn.n.Data)
			if n.Data == nil {
				n.Data = map[string]any{}
			}
			if dn.application >= 0 {
				n.Data["applicationId"] = applicationIDs[dn.application].String()
			}
			if _, err := notifications.Create(ctx, n); err != nil {
				return fmt.Errorf("notification %q: %w", n.Title, err)
			}
		}
		return nil
	})
}
