package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSkillDemand(t *testing.T) {
	projects := []Project{
		{RequiredSkills: []string{"Go", "SQL"}, PreferredSkills: []string{"Docker"}},
		{RequiredSkills: []string{"go", " Kubernetes "}, PreferredSkills: []string{"docker", "sql"}},
		{RequiredSkills: []string{""}, PreferredSkills: []string{"Rust"}},
	}

	assert.Equal(t, []string{"go", "sql", "docker", "kubernetes", "rust"}, RankSkillDemand(projects, 10))
	assert.Equal(t, []string{"go", "sql"}, RankSkillDemand(projects, 2))
	assert.Empty(t, RankSkillDemand(nil, 10))
}
