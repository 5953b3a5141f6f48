package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
)

// ParseRole accepts the two platform roles, case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleRecruiter:
		return RoleRecruiter, true
	case RoleApplicant:
		return RoleApplicant, true
	default:
		return "", false
	}
}

type User struct {
	ID               uuid.UUID `json:"id"`
	GoogleID         string    `json:"google_id,omitempty"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	Role             Role      `json:"role,omitempty"`
	ProfileCompleted bool      `json:"profile_completed"`
	PasswordHash     string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u User) IsRecruiter() bool { return u.Role == RoleRecruiter }
func (u User) IsApplicant() bool { return u.Role == RoleApplicant }
