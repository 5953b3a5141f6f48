package matching

import (
	"testing"

	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
)

func applicant() profile.ApplicantProfile {
	return profile.ApplicantProfile{
		Location:         "Cape Town, South Africa",
		ExperienceLevel:  profile.ExperienceMid,
		RemotePreference: profile.RemoteOnsite,
		Skills: []profile.Skill{
			{Name: "React", Level: 85},
			{Name: "TypeScript", Level: 70},
			{Name: "Node", Level: 60},
		},
		Certifications: []string{"AWS Certified Developer - Associate"},
	}
}

func job() project.Project {
	return project.Project{
		Title:                  "Frontend Engineer",
		Location:               "Cape Town",
		RemoteOption:           project.RemoteOptionOnsite,
		ExperienceLevel:        profile.ExperienceSenior,
		RequiredSkills:         []string{"React", "TypeScript", "GraphQL", "Node.js"},
		RequiredCertifications: []string{"AWS Certified Developer", "CKA"},
	}
}

func TestCalculate_WeightedComponents(t *testing.T) {
	res := Calculate(applicant(), job())

	// react, typescript, node.js (contains "node") match; graphql is missing.
	if res.Breakdown.Skills != 30 {
		t.Fatalf("skills=%v want 30", res.Breakdown.Skills)
	}
	if res.Breakdown.Experience != 20 {
		t.Fatalf("experience=%v want 20", res.Breakdown.Experience)
	}
	if res.Breakdown.Location != 20 {
		t.Fatalf("location=%v want 20", res.Breakdown.Location)
	}
	if res.Breakdown.Certifications != 5 {
		t.Fatalf("certifications=%v want 5", res.Breakdown.Certifications)
	}
	if res.Score != 75 {
		t.Fatalf("score=%d want 75", res.Score)
	}
	if len(res.Insights.Strengths) != 1 || res.Insights.Strengths[0] != "Strong match in 3 required skills" {
		t.Fatalf("strengths=%v", res.Insights.Strengths)
	}
	if res.Insights.MatchReasons[0] != "Has react, typescript, node.js skills" {
		t.Fatalf("match_reasons=%v", res.Insights.MatchReasons)
	}
	if len(res.Insights.Gaps) == 0 {
		t.Fatalf("expected graphql gap")
	}
}

func TestCalculate_IsRepeatable(t *testing.T) {
	a, j := applicant(), job()
	first := Calculate(a, j)
	for i := 0; i < 50; i++ {
		if got := Calculate(a, j); got.Score != first.Score || got.Breakdown != first.Breakdown {
			t.Fatalf("run %d: got %+v want %+v", i, got, first)
		}
	}
}

func TestCalculate_NoRequirementsGivesFullSkillAndCertPoints(t *testing.T) {
	j := job()
	j.RequiredSkills = nil
	j.RequiredCertifications = nil
	res := Calculate(profile.ApplicantProfile{ExperienceLevel: profile.ExperienceSenior}, j)

	if res.Breakdown.Skills != 40 || res.Breakdown.Certifications != 10 {
		t.Fatalf("breakdown=%+v", res.Breakdown)
	}
	if res.Breakdown.Location != 10 {
		t.Fatalf("location=%v want 10 for an empty applicant location", res.Breakdown.Location)
	}
	if res.Score != 90 {
		t.Fatalf("score=%d want 90", res.Score)
	}
}

func TestCalculate_RemoteAlwaysCompatible(t *testing.T) {
	a := applicant()
	a.Location = "Nairobi"
	j := job()
	j.RemoteOption = project.RemoteOptionRemote
	if got := Calculate(a, j).Breakdown.Location; got != 20 {
		t.Fatalf("remote job location=%v", got)
	}

	j.RemoteOption = project.RemoteOptionHybrid
	a.RemotePreference = profile.RemoteRemote
	if got := Calculate(a, j).Breakdown.Location; got != 20 {
		t.Fatalf("remote applicant location=%v", got)
	}

	a.RemotePreference = profile.RemoteHybrid
	if got := Calculate(a, j).Breakdown.Location; got != 10 {
		t.Fatalf("mismatched location=%v", got)
	}
}

func TestCalculate_ExperienceFloorsAtZero(t *testing.T) {
	a := applicant()
	a.ExperienceLevel = profile.ExperienceEntry
	j := job()
	j.ExperienceLevel = profile.ExperienceLead
	if got := Calculate(a, j).Breakdown.Experience; got != 0 {
		t.Fatalf("experience=%v want 0", got)
	}
}

func TestCalculate_DuplicateCertificationsDoNotOverflow(t *testing.T) {
	a := applicant()
	a.Certifications = []string{"CKA", "CKA (renewed)", "CKAD"}
	j := job()
	j.RequiredCertifications = []string{"CKA"}
	if got := Calculate(a, j).Breakdown.Certifications; got != 10 {
		t.Fatalf("certifications=%v want 10", got)
	}
}

func TestInsightsNormalize(t *testing.T) {
	in := Insights{Strengths: []string{"x"}}.Normalize()
	if in.Gaps == nil || in.Recommendations == nil || in.MatchReasons == nil {
		t.Fatalf("nil lists after normalize: %+v", in)
	}
}
