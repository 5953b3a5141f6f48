package project

import (
	"sort"
	"strings"
)

// RankSkillDemand weighs each required skill 1 and each preferred skill 0.5,
// keyed by lowercase name, and returns the n most demanded. Ties sort by name.
func RankSkillDemand(projects []Project, n int) []string {
	demand := make(map[string]float64)
	for _, p := range projects {
		for _, s := range p.RequiredSkills {
			if k := strings.ToLower(strings.TrimSpace(s)); k != "" {
				demand[k]++
			}
		}
		for _, s := range p.PreferredSkills {
			if k := strings.ToLower(strings.TrimSpace(s)); k != "" {
				demand[k] += 0.5
			}
		}
	}

	skills := make([]string, 0, len(demand))
	for k := range demand {
		skills = append(skills, k)
	}
	sort.Slice(skills, func(i, j int) bool {
		if demand[skills[i]] != demand[skills[j]] {
			return demand[skills[i]] > demand[skills[j]]
		}
		return skills[i] < skills[j]
	})
	if n >= 0 && len(skills) > n {
		skills = skills[:n]
	}
	return skills
}
