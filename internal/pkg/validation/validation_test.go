package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"oneof=recruiter applicant"`
	Level int    `json:"level" validate:"gte=0,lte=100"`
}

func TestValidate(t *testing.T) {
	v := New()
	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Role: "recruiter", Level: 10}))

	err := v.Validate(&sample{Email: "nope", Role: "admin", Level: 120})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"email": "must be a valid email",
		"role":  "must be one of: recruiter applicant",
		"level": "must be <= 100",
	}, Fields(err))
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}
