package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeApplicationStatus   Type = "application_status"
	TypeInterviewScheduled  Type = "interview_scheduled"
	TypeNewMatch            Type = "new_match"
	TypeSkillRecommendation Type = "skill_recommendation"
	TypeProfileUpdate       Type = "profile_update"
)

type Notification struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}
