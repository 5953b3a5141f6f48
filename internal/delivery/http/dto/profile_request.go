package dto

import (
	"time"

	"talent-match/internal/domain/profile"
)

type SkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
	Verified bool   `json:"verified"`
}

type WorkExperienceRequest struct {
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type EducationRequest struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	Year         string `json:"year"`
	Grade        string `json:"grade"`
}

type SalaryRequest struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

func (s *SalaryRequest) toDomain() profile.Salary {
	if s == nil {
		return profile.Salary{}
	}
	return profile.Salary{Min: s.Min, Max: s.Max, Currency: s.Currency}
}

type ApplicantProfileRequest struct {
	Phone            string                  `json:"phone"`
	Location         string                  `json:"location"`
	Bio              string                  `json:"bio" validate:"max=2000"`
	LinkedInURL      string                  `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL        string                  `json:"github_url" validate:"omitempty,url"`
	PortfolioURL     string                  `json:"portfolio_url" validate:"omitempty,url"`
	Skills           []SkillRequest          `json:"skills" validate:"dive"`
	WorkExperience   []WorkExperienceRequest `json:"work_experience"`
	Education        []EducationRequest      `json:"education"`
	Certifications   []string                `json:"certifications"`
	ExperienceLevel  string                  `json:"experience_level" validate:"omitempty,oneof=entry mid senior lead"`
	PreferredSalary  *SalaryRequest          `json:"preferred_salary"`
	Availability     string                  `json:"availability" validate:"omitempty,oneof=immediate two_weeks one_month negotiable"`
	RemotePreference string                  `json:"remote_preference" validate:"omitempty,oneof=remote hybrid onsite flexible"`
}

func (r ApplicantProfileRequest) ToDomain() profile.ApplicantProfile {
	p := profile.ApplicantProfile{
		Phone:            r.Phone,
		Location:         r.Location,
		Bio:              r.Bio,
		LinkedInURL:      r.LinkedInURL,
		GitHubURL:        r.GitHubURL,
		PortfolioURL:     r.PortfolioURL,
		Certifications:   r.Certifications,
		ExperienceLevel:  profile.ExperienceLevel(r.ExperienceLevel),
		PreferredSalary:  r.PreferredSalary.toDomain(),
		Availability:     profile.Availability(r.Availability),
		RemotePreference: profile.RemotePreference(r.RemotePreference),
	}
	for _, s := range r.Skills {
		p.Skills = append(p.Skills, profile.Skill{Name: s.Name, Level: s.Level, Verified: s.Verified})
	}
	for _, w := range r.WorkExperience {
		p.WorkExperience = append(p.WorkExperience, profile.WorkExperience(w))
	}
	for _, e := range r.Education {
		p.Education = append(p.Education, profile.Education(e))
	}
	p.ApplyDefaults()
	return p
}

type RecruiterProfileRequest struct {
	Phone           string   `json:"phone"`
	Company         string   `json:"company" validate:"max=200"`
	Position        string   `json:"position"`
	Location        string   `json:"location"`
	CompanyWebsite  string   `json:"company_website" validate:"omitempty,url"`
	CompanySize     string   `json:"company_size"`
	Industry        string   `json:"industry"`
	Bio             string   `json:"bio" validate:"max=2000"`
	LinkedInURL     string   `json:"linkedin_url" validate:"omitempty,url"`
	Specializations []string `json:"specializations"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
}

func (r RecruiterProfileRequest) ToDomain() profile.RecruiterProfile {
	p := profile.RecruiterProfile{
		Phone:           r.Phone,
		Company:         r.Company,
		Position:        r.Position,
		Location:        r.Location,
		CompanyWebsite:  r.CompanyWebsite,
		CompanySize:     r.CompanySize,
		Industry:        r.Industry,
		Bio:             r.Bio,
		LinkedInURL:     r.LinkedInURL,
		Specializations: r.Specializations,
		YearsExperience: r.YearsExperience,
	}
	p.ApplyDefaults()
	return p
}

// RoleRequest carries the role of POST /profiles; the remaining body fields
// are decoded into the profile request for that role.
type RoleRequest struct {
	Role string `json:"role"`
}
