package dto

import (
	"time"

	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/usecase"
)

type CreateProjectRequest struct {
	Title                  string         `json:"title" validate:"required,max=200"`
	Company                string         `json:"company" validate:"required"`
	Description            string         `json:"description" validate:"required"`
	Location               string         `json:"location" validate:"required"`
	RemoteOption           string         `json:"remote_option" validate:"required,oneof=remote hybrid onsite"`
	EmploymentType         string         `json:"employment_type" validate:"required,oneof=full_time part_time contract internship"`
	ExperienceLevel        string         `json:"experience_level" validate:"required,oneof=entry mid senior lead"`
	RequiredSkills         []string       `json:"required_skills"`
	PreferredSkills        []string       `json:"preferred_skills"`
	RequiredCertifications []string       `json:"required_certifications"`
	SalaryRange            *SalaryRequest `json:"salary_range"`
	Benefits               []string       `json:"benefits"`
	Requirements           []string       `json:"requirements"`
	Responsibilities       []string       `json:"responsibilities"`
	Status                 string         `json:"status" validate:"omitempty,oneof=draft active paused closed"`
	Priority               string         `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Deadline               *time.Time     `json:"deadline"`
}

func (r CreateProjectRequest) ToDomain() project.Project {
	p := project.Project{
		Title:                  r.Title,
		Company:                r.Company,
		Description:            r.Description,
		Location:               r.Location,
		RemoteOption:           project.RemoteOption(r.RemoteOption),
		EmploymentType:         project.EmploymentType(r.EmploymentType),
		ExperienceLevel:        profile.ExperienceLevel(r.ExperienceLevel),
		RequiredSkills:         r.RequiredSkills,
		PreferredSkills:        r.PreferredSkills,
		RequiredCertifications: r.RequiredCertifications,
		SalaryRange:            r.SalaryRange.toDomain(),
		Benefits:               r.Benefits,
		Requirements:           r.Requirements,
		Responsibilities:       r.Responsibilities,
		Status:                 project.Status(r.Status),
		Priority:               project.Priority(r.Priority),
		Deadline:               r.Deadline,
	}
	p.ApplyDefaults()
	return p
}

// UpdateProjectRequest is a partial update; absent fields stay unchanged.
type UpdateProjectRequest struct {
	Title                  *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Company                *string        `json:"company" validate:"omitempty,min=1"`
	Description            *string        `json:"description" validate:"omitempty,min=1"`
	Location               *string        `json:"location" validate:"omitempty,min=1"`
	RemoteOption           *string        `json:"remote_option" validate:"omitempty,oneof=remote hybrid onsite"`
	EmploymentType         *string        `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	ExperienceLevel        *string        `json:"experience_level" validate:"omitempty,oneof=entry mid senior lead"`
	RequiredSkills         *[]string      `json:"required_skills"`
	PreferredSkills        *[]string      `json:"preferred_skills"`
	RequiredCertifications *[]string      `json:"required_certifications"`
	SalaryRange            *SalaryRequest `json:"salary_range"`
	Benefits               *[]string      `json:"benefits"`
	Requirements           *[]string      `json:"requirements"`
	Responsibilities       *[]string      `json:"responsibilities"`
	Status                 *string        `json:"status" validate:"omitempty,oneof=draft active paused closed"`
	Priority               *string        `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Deadline               *time.Time     `json:"deadline"`
}

func (r UpdateProjectRequest) ToPatch() usecase.ProjectPatch {
	patch := usecase.ProjectPatch{
		Title:                  r.Title,
		Company:                r.Company,
		Description:            r.Description,
		Location:               r.Location,
		RequiredSkills:         r.RequiredSkills,
		PreferredSkills:        r.PreferredSkills,
		RequiredCertifications: r.RequiredCertifications,
		Benefits:               r.Benefits,
		Requirements:           r.Requirements,
		Responsibilities:       r.Responsibilities,
		Deadline:               r.Deadline,
	}
	if r.RemoteOption != nil {
		v := project.RemoteOption(*r.RemoteOption)
		patch.RemoteOption = &v
	}
	if r.EmploymentType != nil {
		v := project.EmploymentType(*r.EmploymentType)
		patch.EmploymentType = &v
	}
	if r.ExperienceLevel != nil {
		v := profile.ExperienceLevel(*r.ExperienceLevel)
		patch.ExperienceLevel = &v
	}
	if r.SalaryRange != nil {
		v := r.SalaryRange.toDomain()
		patch.SalaryRange = &v
	}
	if r.Status != nil {
		v := project.Status(*r.Status)
		patch.Status = &v
	}
	if r.Priority != nil {
		v := project.Priority(*r.Priority)
		patch.Priority = &v
	}
	return patch
}

type ScheduleInterviewRequest struct {
	ApplicationID string    `json:"applicationId" validate:"required,uuid"`
	InterviewDate time.Time `json:"interviewDate" validate:"required"`
}
