package cv

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	uid := uuid.New()
	now := time.Date(2025, 8, 24, 10, 0, 0, 0, time.FixedZone("SAST", 2*3600))
	ex := Extracted{
		FullName:  "Thandi Mokoena",
		Bio:       "Platform engineer",
		GitHubURL: "https://github.com/thandi",
		Skills:    []string{"Go", "Kubernetes"},
		WorkExperience: []WorkExperience{
			{Company: "Acme", Position: "Engineer", Duration: "2021 - 2024"},
		},
		Education: []Education{
			{Institution: "Wits", Degree: "BSc", Field: "Computer Science", Year: 2020},
		},
	}

	rec := NewRecord(ex, "https://blob/cv.pdf", &uid, now)

	assert.Equal(t, "Thandi Mokoena", rec.Name)
	assert.Equal(t, "Platform engineer", rec.About)
	assert.Equal(t, "https://github.com/thandi", rec.GitHub)
	assert.Equal(t, []string{"Engineer at Acme (2021 - 2024)"}, rec.Experience)
	assert.Equal(t, []string{"BSc in Computer Science, Wits (2020)"}, rec.Education)
	assert.Equal(t, time.UTC, rec.UploadedAt.Location())
	assert.Equal(t, &uid, rec.UserID)
}
