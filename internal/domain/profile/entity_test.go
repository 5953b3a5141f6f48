package profile

import "testing"

func TestCompletenessScore(t *testing.T) {
	p := ApplicantProfile{}
	if got := p.CompletenessScore(); got != 0 {
		t.Fatalf("empty profile score=%d", got)
	}

	p = ApplicantProfile{
		Bio:            "backend engineer",
		Skills:         []Skill{{Name: "Go", Level: 80}},
		WorkExperience: []WorkExperience{{Company: "Acme"}},
		Education:      []Education{{Institution: "UCT"}},
		Certifications: []string{"CKA"},
		LinkedInURL:    "https://linkedin.com/in/x",
		PortfolioURL:   "https://x.dev",
	}
	if got := p.CompletenessScore(); got != 100 {
		t.Fatalf("full profile score=%d want 100", got)
	}

	p.Certifications = nil
	p.LinkedInURL = ""
	if got := p.CompletenessScore(); got != 80 {
		t.Fatalf("partial profile score=%d want 80", got)
	}
}

func TestApplicantDefaults(t *testing.T) {
	p := ApplicantProfile{ExperienceLevel: "guru"}
	p.ApplyDefaults()
	if p.ExperienceLevel != ExperienceEntry || p.Location != NotSpecified || p.PreferredSalary.Currency != "ZAR" {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Skills == nil || p.Certifications == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestRecruiterDefaults(t *testing.T) {
	p := RecruiterProfile{Company: "Acme", YearsExperience: -3}
	p.ApplyDefaults()
	if p.Industry != NotSpecified || p.CompanySize != NotSpecified || p.Location != NotSpecified || p.Position != NotSpecified {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.YearsExperience != 0 {
		t.Fatalf("years=%d", p.YearsExperience)
	}
}

func TestUpsertSkill(t *testing.T) {
	p := ApplicantProfile{Skills: []Skill{{Name: "React", Level: 40, Verified: true}}}
	p.UpsertSkill("react", 85)
	p.UpsertSkill("Go", 60)

	if len(p.Skills) != 2 {
		t.Fatalf("skills=%v", p.Skills)
	}
	if p.Skills[0].Level != 85 || !p.Skills[0].Verified || p.Skills[0].Name != "React" {
		t.Fatalf("existing skill not updated in place: %+v", p.Skills[0])
	}
	if p.Skills[1] != (Skill{Name: "Go", Level: 60}) {
		t.Fatalf("new skill=%+v", p.Skills[1])
	}
}

func TestExperienceRank(t *testing.T) {
	if ExperienceLevel("Senior").Rank() != 2 || ExperienceLevel("unknown").Rank() != 0 || ExperienceLead.Rank() != 3 {
		t.Fatalf("unexpected ranks")
	}
}
