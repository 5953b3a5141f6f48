package ai

import (
	"fmt"
	"strings"

	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
)

func skillList(skills []profile.Skill) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		parts = append(parts, fmt.Sprintf("%s (%d%%)", s.Name, s.Level))
	}
	return strings.Join(parts, ", ")
}

func matchScorePrompt(a profile.ApplicantProfile, p project.Project) string {
	work := make([]string, 0, len(a.WorkExperience))
	for _, w := range a.WorkExperience {
		work = append(work, w.Position+" at "+w.Company)
	}
	edu := make([]string, 0, len(a.Education))
	for _, e := range a.Education {
		edu = append(edu, e.Degree+" from "+e.Institution)
	}

	var b strings.Builder
	b.WriteString("Analyze the match between this candidate and job posting. Return a JSON response with score (0-100) and insights.\n\n")
	b.WriteString("CANDIDATE:\n")
	fmt.Fprintf(&b, "- Skills: %s\n", skillList(a.Skills))
	fmt.Fprintf(&b, "- Experience Level: %s\n", a.ExperienceLevel)
	fmt.Fprintf(&b, "- Work Experience: %s\n", strings.Join(work, ", "))
	fmt.Fprintf(&b, "- Education: %s\n", strings.Join(edu, ", "))
	fmt.Fprintf(&b, "- Certifications: %s\n", strings.Join(a.Certifications, ", "))
	fmt.Fprintf(&b, "- Location: %s\n", a.Location)
	fmt.Fprintf(&b, "- Remote Preference: %s\n\n", a.RemotePreference)
	b.WriteString("JOB POSTING:\n")
	fmt.Fprintf(&b, "- Title: %s\n", p.Title)
	fmt.Fprintf(&b, "- Required Skills: %s\n", strings.Join(p.RequiredSkills, ", "))
	fmt.Fprintf(&b, "- Preferred Skills: %s\n", strings.Join(p.PreferredSkills, ", "))
	fmt.Fprintf(&b, "- Experience Level: %s\n", p.ExperienceLevel)
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	fmt.Fprintf(&b, "- Remote Option: %s\n", p.RemoteOption)
	fmt.Fprintf(&b, "- Required Certifications: %s\n\n", strings.Join(p.RequiredCertifications, ", "))
	b.WriteString(`Return JSON format:
{
  "score": number,
  "insights": {
    "strengths": ["strength1", "strength2"],
    "gaps": ["gap1", "gap2"],
    "recommendations": ["rec1", "rec2"],
    "match_reasons": ["reason1", "reason2"]
  }
}`)
	return b.String()
}

func skillRecommendationsPrompt(a profile.ApplicantProfile, trends []string) string {
	return fmt.Sprintf(`Based on this candidate's profile and current market trends, recommend skills to improve employability.

CANDIDATE SKILLS: %s
EXPERIENCE LEVEL: %s
MARKET TRENDS: %s

Return JSON with skill recommendations including learning resources:
{
  "recommendations": [
    {
      "skill": "skill_name",
      "priority": "high|medium|low",
      "reason": "why this skill is important",
      "resources": [
        {
          "title": "resource title",
          "type": "course|certification|book|tutorial",
          "provider": "provider name",
          "url": "optional url",
          "free": true|false
        }
      ]
    }
  ]
}`, skillList(a.Skills), a.ExperienceLevel, strings.Join(trends, ", "))
}

func jobRecommendationsPrompt(a profile.ApplicantProfile, jobs []project.Project) string {
	var b strings.Builder
	b.WriteString("Recommend the best job matches for this candidate from available positions.\n\n")
	b.WriteString("CANDIDATE:\n")
	fmt.Fprintf(&b, "- Skills: %s\n", skillList(a.Skills))
	fmt.Fprintf(&b, "- Experience: %s\n", a.ExperienceLevel)
	fmt.Fprintf(&b, "- Location: %s\n", a.Location)
	fmt.Fprintf(&b, "- Remote Preference: %s\n\n", a.RemotePreference)
	b.WriteString("AVAILABLE JOBS:\n")
	for _, j := range jobs {
		fmt.Fprintf(&b, "ID: %s\nTitle: %s\nSkills: %s\nExperience: %s\nLocation: %s\nRemote: %s\n\n",
			j.ID, j.Title, strings.Join(j.RequiredSkills, ", "), j.ExperienceLevel, j.Location, j.RemoteOption)
	}
	fmt.Fprintf(&b, `Return JSON with top %d recommendations:
{
  "recommendations": [
    {
      "project_id": "job_id",
      "match_score": number,
      "reasons": ["reason1", "reason2"]
    }
  ]
}`, maxJobRecommendations)
	return b.String()
}

func cvExtractionPrompt(text string) string {
	return `Extract CV information from this text and return ONLY valid JSON:

` + text + `

Return ONLY this JSON structure:
{
  "full_name": "extracted full name",
  "bio": "professional summary or about section",
  "linkedin_url": "linkedin profile URL if found",
  "github_url": "github profile URL if found",
  "location": "city, country or location",
  "skills": ["skill1", "skill2", "skill3"],
  "work_experience": [
    {
      "company": "Company Name",
      "position": "Job Title",
      "duration": "Start - End dates",
      "description": "Job responsibilities and achievements"
    }
  ],
  "education": [
    {
      "institution": "University/School Name",
      "degree": "Degree Type",
      "field": "Field of Study",
      "year": 2023
    }
  ]
}

No explanations, just JSON.`
}

// ActionPrompt frames a user action together with platform context.
func ActionPrompt(action, context string) string {
	return fmt.Sprintf("The user performed action: %s.\nHere is the context:\n%s", action, context)
}
