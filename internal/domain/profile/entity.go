package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// ExperienceLevels is ordered from junior to senior; the index is the level's rank.
var ExperienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead}

// Rank returns the position in ExperienceLevels, treating unknown values as entry.
func (l ExperienceLevel) Rank() int {
	for i, v := range ExperienceLevels {
		if v == ExperienceLevel(strings.ToLower(string(l))) {
			return i
		}
	}
	return 0
}

func (l ExperienceLevel) Valid() bool {
	for _, v := range ExperienceLevels {
		if v == l {
			return true
		}
	}
	return false
}

type Availability string

const (
	AvailabilityImmediate  Availability = "immediate"
	AvailabilityTwoWeeks   Availability = "two_weeks"
	AvailabilityOneMonth   Availability = "one_month"
	AvailabilityNegotiable Availability = "negotiable"
)

type RemotePreference string

const (
	RemoteRemote   RemotePreference = "remote"
	RemoteHybrid   RemotePreference = "hybrid"
	RemoteOnsite   RemotePreference = "onsite"
	RemoteFlexible RemotePreference = "flexible"
)

const (
	NotSpecified    = "Not specified"
	DefaultCurrency = "ZAR"

	// CompletionThreshold is the profile score from which an applicant counts as complete.
	CompletionThreshold = 70
)

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Verified bool   `json:"verified"`
}

type WorkExperience struct {
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Year         string `json:"year"`
	Grade        string `json:"grade,omitempty"`
}

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type ApplicantProfile struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	Phone            string           `json:"phone,omitempty"`
	Location         string           `json:"location"`
	Bio              string           `json:"bio"`
	LinkedInURL      string           `json:"linkedin_url,omitempty"`
	GitHubURL        string           `json:"github_url,omitempty"`
	PortfolioURL     string           `json:"portfolio_url,omitempty"`
	Skills           []Skill          `json:"skills"`
	WorkExperience   []WorkExperience `json:"work_experience"`
	Education        []Education      `json:"education"`
	Certifications   []string         `json:"certifications"`
	ExperienceLevel  ExperienceLevel  `json:"experience_level"`
	PreferredSalary  Salary           `json:"preferred_salary"`
	Availability     Availability     `json:"availability"`
	RemotePreference RemotePreference `json:"remote_preference"`
	ProfileScore     int              `json:"profile_score"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CompletenessScore weighs which sections of the profile are filled in; the maximum is 100.
func (p ApplicantProfile) CompletenessScore() int {
	score := 0
	if strings.TrimSpace(p.Bio) != "" {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 25
	}
	if len(p.WorkExperience) > 0 {
		score += 20
	}
	if len(p.Education) > 0 {
		score += 15
	}
	if len(p.Certifications) > 0 {
		score += 10
	}
	if strings.TrimSpace(p.LinkedInURL) != "" {
		score += 10
	}
	if strings.TrimSpace(p.GitHubURL) != "" || strings.TrimSpace(p.PortfolioURL) != "" {
		score += 5
	}
	return score
}

// ApplyDefaults fills the fields a freshly submitted profile may omit.
func (p *ApplicantProfile) ApplyDefaults() {
	if !p.ExperienceLevel.Valid() {
		p.ExperienceLevel = ExperienceEntry
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = NotSpecified
	}
	if p.PreferredSalary.Currency == "" {
		p.PreferredSalary.Currency = DefaultCurrency
	}
	if p.Availability == "" {
		p.Availability = AvailabilityNegotiable
	}
	if p.RemotePreference == "" {
		p.RemotePreference = RemoteFlexible
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.WorkExperience == nil {
		p.WorkExperience = []WorkExperience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
}

// UpsertSkill sets the level of a skill matched case-insensitively, appending it when absent.
func (p *ApplicantProfile) UpsertSkill(name string, level int) {
	for i := range p.Skills {
		if strings.EqualFold(p.Skills[i].Name, name) {
			p.Skills[i].Level = level
			return
		}
	}
	p.Skills = append(p.Skills, Skill{Name: name, Level: level})
}

type RecruiterProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company"`
	Position        string    `json:"position"`
	Location        string    `json:"location"`
	CompanyWebsite  string    `json:"company_website,omitempty"`
	CompanySize     string    `json:"company_size"`
	Industry        string    `json:"industry"`
	Bio             string    `json:"bio"`
	LinkedInURL     string    `json:"linkedin_url,omitempty"`
	Specializations []string  `json:"specializations"`
	YearsExperience int       `json:"years_experience"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *RecruiterProfile) ApplyDefaults() {
	for _, f := range []*string{&p.Industry, &p.CompanySize, &p.Location, &p.Position} {
		if strings.TrimSpace(*f) == "" {
			*f = NotSpecified
		}
	}
	if p.YearsExperience < 0 {
		p.YearsExperience = 0
	}
	if p.Specializations == nil {
		p.Specializations = []string{}
	}
}
