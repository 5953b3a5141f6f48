package project

import (
	"time"

	"talent-match/internal/domain/profile"

	"github.com/google/uuid"
)

type RemoteOption string

const (
	RemoteOptionRemote RemoteOption = "remote"
	RemoteOptionHybrid RemoteOption = "hybrid"
	RemoteOptionOnsite RemoteOption = "onsite"
)

func (r RemoteOption) Valid() bool {
	switch r {
	case RemoteOptionRemote, RemoteOptionHybrid, RemoteOptionOnsite:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Project struct {
	ID                     uuid.UUID               `json:"id"`
	RecruiterID            uuid.UUID               `json:"recruiter_id"`
	Title                  string                  `json:"title"`
	Company                string                  `json:"company"`
	Description            string                  `json:"description"`
	Location               string                  `json:"location"`
	RemoteOption           RemoteOption            `json:"remote_option"`
	EmploymentType         EmploymentType          `json:"employment_type"`
	ExperienceLevel        profile.ExperienceLevel `json:"experience_level"`
	RequiredSkills         []string                `json:"required_skills"`
	PreferredSkills        []string                `json:"preferred_skills"`
	RequiredCertifications []string                `json:"required_certifications"`
	SalaryRange            profile.Salary          `json:"salary_range"`
	Benefits               []string                `json:"benefits"`
	Requirements           []string                `json:"requirements"`
	Responsibilities       []string                `json:"responsibilities"`
	Status                 Status                  `json:"status"`
	Priority               Priority                `json:"priority"`
	ApplicationsCount      int                     `json:"applications_count"`
	MatchesCount           int                     `json:"matches_count"`
	Deadline               *time.Time              `json:"deadline,omitempty"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
}

// ApplyDefaults sets status, priority and currency defaults and replaces nil lists.
func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Priority == "" {
		p.Priority = PriorityMedium
	}
	if p.SalaryRange.Currency == "" {
		p.SalaryRange.Currency = profile.DefaultCurrency
	}
	for _, l := range []*[]string{&p.RequiredSkills, &p.PreferredSkills, &p.RequiredCertifications, &p.Benefits, &p.Requirements, &p.Responsibilities} {
		if *l == nil {
			*l = []string{}
		}
	}
}

// Summary is the public listing view of an active project.
type Summary struct {
	ID              uuid.UUID               `json:"id"`
	Title           string                  `json:"title"`
	Company         string                  `json:"company"`
	Location        string                  `json:"location"`
	RequiredSkills  []string                `json:"required_skills"`
	ExperienceLevel profile.ExperienceLevel `json:"experience_level"`
	RemoteOption    RemoteOption            `json:"remote_option"`
	SalaryRange     profile.Salary          `json:"salary_range"`
}

func (p Project) Summary() Summary {
	return Summary{
		ID:              p.ID,
		Title:           p.Title,
		Company:         p.Company,
		Location:        p.Location,
		RequiredSkills:  p.RequiredSkills,
		ExperienceLevel: p.ExperienceLevel,
		RemoteOption:    p.RemoteOption,
		SalaryRange:     p.SalaryRange,
	}
}
