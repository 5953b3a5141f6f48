package application

import (
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterviewed Status = "interviewed"
	StatusOffered     Status = "offered"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusInterviewed, StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID                 uuid.UUID         `json:"id"`
	ApplicantID        uuid.UUID         `json:"applicant_id"`
	ProjectID          uuid.UUID         `json:"project_id"`
	Status             Status            `json:"status"`
	MatchScore         int               `json:"match_score"`
	CoverLetter        string            `json:"cover_letter,omitempty"`
	AIInsights         matching.Insights `json:"ai_insights"`
	InterviewScheduled *time.Time        `json:"interview_scheduled,omitempty"`
	InterviewFeedback  string            `json:"interview_feedback,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
