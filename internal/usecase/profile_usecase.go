package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileView is a user with the profile matching their role; Profile is nil
// when the user has no role or has not created one yet.
type ProfileView struct {
	User    user.User `json:"user"`
	Profile any       `json:"profile"`
}

type CreateProfileInput struct {
	Role      string
	Applicant profile.ApplicantProfile
	Recruiter profile.RecruiterProfile
}

type ProfileUsecase struct {
	users      user.Repository
	applicants profile.ApplicantRepository
	recruiters profile.RecruiterRepository
	notifier   Notifier
	logger     *zap.Logger
}

func NewProfileUsecase(users user.Repository, applicants profile.ApplicantRepository, recruiters profile.RecruiterRepository, notifier Notifier, logger *zap.Logger) *ProfileUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileUsecase{users: users, applicants: applicants, recruiters: recruiters, notifier: notifier, logger: logger}
}

// Create sets the caller's role and upserts the profile for it.
func (u *ProfileUsecase) Create(ctx context.Context, userID uuid.UUID, in CreateProfileInput) (any, error) {
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return nil, ErrRoleRequired
	}

	switch role {
	case user.RoleApplicant:
		p := in.Applicant
		p.UserID = userID
		p.ProfileScore = p.CompletenessScore()
		saved, err := u.applicants.Upsert(ctx, p)
		if err != nil {
			return nil, err
		}
		if err := u.users.UpdateRole(ctx, userID, role, saved.ProfileScore >= profile.CompletionThreshold); err != nil {
			return nil, err
		}
		u.profileSaved(ctx, userID)
		return saved, nil
	default:
		p := in.Recruiter
		p.UserID = userID
		saved, err := u.recruiters.Upsert(ctx, p)
		if err != nil {
			return nil, err
		}
		if err := u.users.UpdateRole(ctx, userID, role, true); err != nil {
			return nil, err
		}
		u.profileSaved(ctx, userID)
		return saved, nil
	}
}

// SaveApplicant creates or replaces the caller's applicant profile.
func (u *ProfileUsecase) SaveApplicant(ctx context.Context, userID uuid.UUID, p profile.ApplicantProfile) (profile.ApplicantProfile, error) {
	p.UserID = userID
	p.ProfileScore = p.CompletenessScore()

	saved, err := u.applicants.Upsert(ctx, p)
	if err != nil {
		return profile.ApplicantProfile{}, err
	}
	if err := u.users.SetProfileCompleted(ctx, userID, saved.ProfileScore >= profile.CompletionThreshold); err != nil {
		return profile.ApplicantProfile{}, err
	}
	u.profileSaved(ctx, userID)
	return saved, nil
}

// CreateRecruiter refuses to overwrite an existing recruiter profile.
func (u *ProfileUsecase) CreateRecruiter(ctx context.Context, userID uuid.UUID, p profile.RecruiterProfile) (profile.RecruiterProfile, error) {
	_, err := u.recruiters.GetByUserID(ctx, userID)
	if err == nil {
		return profile.RecruiterProfile{}, ErrProfileExists
	}
	if !errors.Is(err, profile.ErrNotFound) {
		return profile.RecruiterProfile{}, err
	}

	p.UserID = userID
	saved, err := u.recruiters.Upsert(ctx, p)
	if err != nil {
		return profile.RecruiterProfile{}, err
	}
	if err := u.users.SetProfileCompleted(ctx, userID, true); err != nil {
		return profile.RecruiterProfile{}, err
	}
	u.profileSaved(ctx, userID)
	return saved, nil
}

func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	usr.PasswordHash = ""
	view := ProfileView{User: usr}

	switch usr.Role {
	case user.RoleApplicant:
		p, err := u.applicants.GetByUserID(ctx, userID)
		if err == nil {
			view.Profile = p
		} else if !errors.Is(err, profile.ErrNotFound) {
			return ProfileView{}, err
		}
	case user.RoleRecruiter:
		p, err := u.recruiters.GetByUserID(ctx, userID)
		if err == nil {
			view.Profile = p
		} else if !errors.Is(err, profile.ErrNotFound) {
			return ProfileView{}, err
		}
	}
	return view, nil
}

// UpdateRole switches role and marks the profile incomplete again.
func (u *ProfileUsecase) UpdateRole(ctx context.Context, userID uuid.UUID, rawRole string) error {
	role, ok := user.ParseRole(rawRole)
	if !ok {
		return ErrInvalidRole
	}
	return u.users.UpdateRole(ctx, userID, role, false)
}

func (u *ProfileUsecase) profileSaved(ctx context.Context, userID uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, notification.Notification{
		UserID:  userID,
		Type:    notification.TypeProfileUpdate,
		Title:   "Profile Updated",
		Message: "Your profile has been saved",
		Data:    map[string]any{"userId": userID.String()},
	})
}
