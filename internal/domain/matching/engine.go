package matching

import (
	"fmt"
	"math"
	"strings"

	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
)

const (
	skillsWeight         = 40.0
	experienceWeight     = 30.0
	experienceStep       = 10.0
	locationMatchScore   = 20.0
	locationMissScore    = 10.0
	certificationsWeight = 10.0
)

// Insights explains a match score to recruiters and applicants.
type Insights struct {
	Strengths       []string `json:"strengths" mapstructure:"strengths"`
	Gaps            []string `json:"gaps" mapstructure:"gaps"`
	Recommendations []string `json:"recommendations" mapstructure:"recommendations"`
	MatchReasons    []string `json:"match_reasons" mapstructure:"match_reasons"`
}

// EmptyInsights returns insights whose lists encode as [] rather than null.
func EmptyInsights() Insights {
	return Insights{
		Strengths:       []string{},
		Gaps:            []string{},
		Recommendations: []string{},
		MatchReasons:    []string{},
	}
}

// Normalize replaces nil lists so stored insights always carry all four keys.
func (in Insights) Normalize() Insights {
	if in.Strengths == nil {
		in.Strengths = []string{}
	}
	if in.Gaps == nil {
		in.Gaps = []string{}
	}
	if in.Recommendations == nil {
		in.Recommendations = []string{}
	}
	if in.MatchReasons == nil {
		in.MatchReasons = []string{}
	}
	return in
}

// Breakdown holds the weighted components before rounding.
type Breakdown struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Location       float64 `json:"location"`
	Certifications float64 `json:"certifications"`
}

func (b Breakdown) Total() float64 {
	return b.Skills + b.Experience + b.Location + b.Certifications
}

type Result struct {
	Score     int       `json:"score"`
	Insights  Insights  `json:"insights"`
	Breakdown Breakdown `json:"breakdown"`
}

// Calculate is the deterministic applicant/project score used whenever the model cannot answer.
// The result depends only on its arguments.
func Calculate(applicant profile.ApplicantProfile, job project.Project) Result {
	insights := EmptyInsights()

	matched, missing := matchSkills(applicant.Skills, job.RequiredSkills)

	var b Breakdown
	if total := len(matched) + len(missing); total == 0 {
		b.Skills = skillsWeight
	} else {
		b.Skills = float64(len(matched)) / float64(total) * skillsWeight
	}
	if len(matched) > 0 {
		insights.Strengths = append(insights.Strengths, fmt.Sprintf("Strong match in %d required skills", len(matched)))
		insights.MatchReasons = append(insights.MatchReasons, fmt.Sprintf("Has %s skills", strings.Join(matched, ", ")))
	}
	if len(missing) > 0 {
		insights.Gaps = append(insights.Gaps, fmt.Sprintf("Missing required skills: %s", strings.Join(missing, ", ")))
		insights.Recommendations = append(insights.Recommendations, fmt.Sprintf("Consider building experience in %s", strings.Join(missing, ", ")))
	}

	diff := math.Abs(float64(applicant.ExperienceLevel.Rank() - job.ExperienceLevel.Rank()))
	b.Experience = math.Max(0, experienceWeight-diff*experienceStep)
	if diff == 0 {
		insights.MatchReasons = append(insights.MatchReasons, fmt.Sprintf("Experience level matches (%s)", job.ExperienceLevel))
	} else if diff >= 2 {
		insights.Gaps = append(insights.Gaps, fmt.Sprintf("Experience level %s differs from required %s", applicant.ExperienceLevel, job.ExperienceLevel))
	}

	if locationCompatible(applicant, job) {
		b.Location = locationMatchScore
	} else {
		b.Location = locationMissScore
	}

	if len(job.RequiredCertifications) == 0 {
		b.Certifications = certificationsWeight
	} else {
		held := heldCertifications(applicant.Certifications, job.RequiredCertifications)
		b.Certifications = float64(held) / float64(len(job.RequiredCertifications)) * certificationsWeight
	}

	return Result{
		Score:     clampInt(int(math.Round(b.Total())), 0, 100),
		Insights:  insights,
		Breakdown: b,
	}
}

// matchSkills returns the required skills (lower-cased) that overlap an applicant skill by
// substring in either direction, plus those that do not.
func matchSkills(have []profile.Skill, required []string) (matched, missing []string) {
	names := make([]string, 0, len(have))
	for _, s := range have {
		n := strings.ToLower(strings.TrimSpace(s.Name))
		if n != "" {
			names = append(names, n)
		}
	}

	for _, r := range required {
		req := strings.ToLower(strings.TrimSpace(r))
		if req == "" {
			continue
		}
		found := false
		for _, n := range names {
			if strings.Contains(n, req) || strings.Contains(req, n) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

func locationCompatible(applicant profile.ApplicantProfile, job project.Project) bool {
	if job.RemoteOption == project.RemoteOptionRemote || applicant.RemotePreference == profile.RemoteRemote {
		return true
	}
	return strings.Contains(strings.ToLower(applicant.Location), strings.ToLower(job.Location))
}

// heldCertifications counts required certifications covered by at least one applicant certification.
func heldCertifications(have, required []string) int {
	n := 0
	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		for _, c := range have {
			if strings.Contains(strings.ToLower(c), r) {
				n++
				break
			}
		}
	}
	return n
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
