package cv

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type WorkExperience struct {
	Company     string `json:"company" mapstructure:"company"`
	Position    string `json:"position" mapstructure:"position"`
	Duration    string `json:"duration" mapstructure:"duration"`
	Description string `json:"description" mapstructure:"description"`
}

type Education struct {
	Institution string `json:"institution" mapstructure:"institution"`
	Degree      string `json:"degree" mapstructure:"degree"`
	Field       string `json:"field" mapstructure:"field"`
	Year        int    `json:"year" mapstructure:"year"`
}

// Extracted is the structured data pulled out of an uploaded CV.
type Extracted struct {
	FullName       string           `json:"full_name,omitempty" mapstructure:"full_name"`
	Email          string           `json:"email,omitempty" mapstructure:"email"`
	Phone          string           `json:"phone,omitempty" mapstructure:"phone"`
	Bio            string           `json:"bio,omitempty" mapstructure:"bio"`
	LinkedInURL    string           `json:"linkedin_url,omitempty" mapstructure:"linkedin_url"`
	GitHubURL      string           `json:"github_url,omitempty" mapstructure:"github_url"`
	Location       string           `json:"location,omitempty" mapstructure:"location"`
	Skills         []string         `json:"skills" mapstructure:"skills"`
	WorkExperience []WorkExperience `json:"work_experience" mapstructure:"work_experience"`
	Education      []Education      `json:"education" mapstructure:"education"`
}

// CV is a stored upload together with the fields extracted from it.
type CV struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	About      string     `json:"about"`
	GitHub     string     `json:"github"`
	Profile    string     `json:"profile"`
	Skills     []string   `json:"skills"`
	Experience []string   `json:"experience"`
	Education  []string   `json:"education"`
	Extracted  Extracted  `json:"extracted"`
	FileURL    string     `json:"file_url"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

// NewRecord flattens extracted data into the stored CV shape.
func NewRecord(ex Extracted, fileURL string, userID *uuid.UUID, now time.Time) CV {
	c := CV{
		UserID:     userID,
		Name:       ex.FullName,
		Email:      ex.Email,
		Phone:      ex.Phone,
		About:      ex.Bio,
		GitHub:     ex.GitHubURL,
		Profile:    ex.LinkedInURL,
		Skills:     append([]string{}, ex.Skills...),
		Experience: make([]string, 0, len(ex.WorkExperience)),
		Education:  make([]string, 0, len(ex.Education)),
		Extracted:  ex,
		FileURL:    fileURL,
		UploadedAt: now.UTC(),
	}
	for _, w := range ex.WorkExperience {
		line := strings.TrimSpace(w.Position + " at " + w.Company)
		if w.Duration != "" {
			line += " (" + w.Duration + ")"
		}
		c.Experience = append(c.Experience, line)
	}
	for _, e := range ex.Education {
		line := e.Degree
		if e.Field != "" {
			line += " in " + e.Field
		}
		if e.Institution != "" {
			line += ", " + e.Institution
		}
		if e.Year > 0 {
			line += " (" + strconv.Itoa(e.Year) + ")"
		}
		c.Education = append(c.Education, strings.TrimSpace(line))
	}
	return c
}
