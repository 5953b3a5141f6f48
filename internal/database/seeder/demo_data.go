package seeder

import (
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/notification"
	"talent-match/internal/domain/profile"
	"talent-match/internal/domain/project"
	"talent-match/internal/domain/user"
)

func zar(lo, hi float64) profile.Salary {
	return profile.Salary{Min: lo, Max: hi, Currency: profile.DefaultCurrency}
}

func skills(pairs ...any) []profile.Skill {
	out := make([]profile.Skill, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, profile.Skill{Name: pairs[i].(string), Level: pairs[i+1].(int)})
	}
	return out
}

// Indexes into demoUsers.
const (
	sarah = iota
	mike
	john
	jane
	david
	lisa
)

var demoUsers = []demoUser{
	{
		Account: Account{Email: "sarah.johnson@techcorp.com", Name: "Sarah Johnson", Role: user.RoleRecruiter, Summary: "TechCorp Solutions"},
		recruiter: &profile.RecruiterProfile{
			Phone:           "+27 11 123 4567",
			Company:         "TechCorp Solutions",
			Position:        "Senior Talent Acquisition Manager",
			Location:        "Johannesburg, South Africa",
			CompanyWebsite:  "https://techcorp.com",
			CompanySize:     "500-1000",
			Industry:        "Technology",
			Bio:             "Experienced talent acquisition professional with 8+ years in tech recruitment.",
			LinkedInURL:     "https://linkedin.com/in/sarahjohnson",
			Specializations: []string{"Software Development", "Data Science", "DevOps"},
			YearsExperience: 8,
		},
	},
	{
		Account: Account{Email: "mike.chen@innovatelab.co.za", Name: "Mike Chen", Role: user.RoleRecruiter, Summary: "InnovateLab"},
		recruiter: &profile.RecruiterProfile{
			Phone:           "+27 21 987 6543",
			Company:         "InnovateLab",
			Position:        "Head of Talent",
			Location:        "Cape Town, South Africa",
			CompanyWebsite:  "https://innovatelab.co.za",
			CompanySize:     "50-200",
			Industry:        "Fintech",
			Bio:             "Passionate about connecting innovative talent with cutting-edge fintech opportunities.",
			LinkedInURL:     "https://linkedin.com/in/mikechen",
			Specializations: []string{"Fintech", "Blockchain", "Mobile Development"},
			YearsExperience: 6,
		},
	},
	{
		Account: Account{Email: "john.doe@email.com", Name: "John Doe", Role: user.RoleApplicant, Summary: "Mid-level Full-stack"},
		applicant: &profile.ApplicantProfile{
			Phone:        "+27 82 123 4567",
			Location:     "Cape Town, South Africa",
			Bio:          "Passionate full-stack developer with 3 years of experience in React, Node.js, and cloud technologies.",
			LinkedInURL:  "https://linkedin.com/in/johndoe",
			GitHubURL:    "https://github.com/johndoe",
			PortfolioURL: "https://johndoe.dev",
			Skills:       skills("React", 85, "TypeScript", 75, "Node.js", 80, "Python", 60, "AWS", 70),
			WorkExperience: []profile.WorkExperience{
				{Company: "TechStart", Position: "Frontend Developer", Duration: "2022-2024", Description: "Developed React applications and improved user experience"},
			},
			Education:        []profile.Education{{Institution: "University of Cape Town", Degree: "BSc Computer Science", Year: "2021"}},
			Certifications:   []string{"AWS Cloud Practitioner"},
			ExperienceLevel:  profile.ExperienceMid,
			PreferredSalary:  zar(400000, 600000),
			Availability:     profile.AvailabilityTwoWeeks,
			RemotePreference: profile.RemoteHybrid,
		},
	},
	{
		Account: Account{Email: "jane.smith@email.com", Name: "Jane Smith", Role: user.RoleApplicant, Summary: "Senior Data Scientist"},
		applicant: &profile.ApplicantProfile{
			Phone:       "+27 83 987 6543",
			Location:    "Johannesburg, South Africa",
			Bio:         "Data scientist with expertise in machine learning and statistical analysis.",
			LinkedInURL: "https://linkedin.com/in/janesmith",
			GitHubURL:   "https://github.com/janesmith",
			Skills:      skills("Python", 90, "Machine Learning", 85, "SQL", 80, "TensorFlow", 75, "R", 70),
			WorkExperience: []profile.WorkExperience{
				{Company: "DataCorp", Position: "Data Analyst", Duration: "2021-2024", Description: "Analyzed large datasets and built predictive models"},
			},
			Education:        []profile.Education{{Institution: "University of the Witwatersrand", Degree: "MSc Data Science", Year: "2021"}},
			Certifications:   []string{"Google Data Analytics", "AWS Machine Learning"},
			ExperienceLevel:  profile.ExperienceSenior,
			PreferredSalary:  zar(600000, 800000),
			Availability:     profile.AvailabilityOneMonth,
			RemotePreference: profile.RemoteRemote,
		},
	},
	{
		Account: Account{Email: "david.wilson@email.com", Name: "David Wilson", Role: user.RoleApplicant, Summary: "Senior Mobile Developer"},
		applicant: &profile.ApplicantProfile{
			Phone:       "+27 84 555 1234",
			Location:    "Durban, South Africa",
			Bio:         "Mobile developer specializing in React Native and Flutter applications.",
			LinkedInURL: "https://linkedin.com/in/davidwilson",
			GitHubURL:   "https://github.com/davidwilson",
			Skills:      skills("React Native", 88, "Flutter", 82, "JavaScript", 85, "Dart", 78, "Firebase", 75),
			WorkExperience: []profile.WorkExperience{
				{Company: "MobileFirst", Position: "Mobile Developer", Duration: "2020-2024", Description: "Built cross-platform mobile applications for various clients"},
			},
			Education:        []profile.Education{{Institution: "University of KwaZulu-Natal", Degree: "BSc Information Technology", Year: "2019"}},
			Certifications:   []string{"Google Mobile Web Specialist"},
			ExperienceLevel:  profile.ExperienceSenior,
			PreferredSalary:  zar(500000, 700000),
			Availability:     profile.AvailabilityImmediate,
			RemotePreference: profile.RemoteFlexible,
		},
	},
	{
		Account: Account{Email: "lisa.brown@email.com", Name: "Lisa Brown", Role: user.RoleApplicant, Summary: "Junior Frontend Developer"},
		applicant: &profile.ApplicantProfile{
			Phone:       "+27 85 777 8888",
			Location:    "Pretoria, South Africa",
			Bio:         "Junior developer eager to learn and grow in the tech industry.",
			LinkedInURL: "https://linkedin.com/in/lisabrown",
			GitHubURL:   "https://github.com/lisabrown",
			Skills:      skills("HTML", 85, "CSS", 80, "JavaScript", 70, "React", 60, "Git", 75),
			WorkExperience: []profile.WorkExperience{
				{Company: "WebStudio", Position: "Junior Web Developer", Duration: "2023-2024", Description: "Assisted in building responsive websites and web applications"},
			},
			Education:        []profile.Education{{Institution: "University of Pretoria", Degree: "BSc Computer Science", Year: "2023"}},
			Certifications:   []string{"freeCodeCamp Responsive Web Design"},
			ExperienceLevel:  profile.ExperienceEntry,
			PreferredSalary:  zar(250000, 400000),
			Availability:     profile.AvailabilityImmediate,
			RemotePreference: profile.RemoteHybrid,
		},
	},
}

var demoProjects = []demoProject{
	{recruiter: sarah, project: project.Project{
		Title:            "Senior React Developer",
		Company:          "TechCorp Solutions",
		Description:      "We are looking for an experienced React developer to join our frontend team.",
		Location:         "Johannesburg, South Africa",
		RemoteOption:     project.RemoteOptionHybrid,
		EmploymentType:   project.EmploymentFullTime,
		ExperienceLevel:  profile.ExperienceSenior,
		RequiredSkills:   []string{"React", "TypeScript", "Node.js", "GraphQL"},
		PreferredSkills:  []string{"Next.js", "AWS", "Docker"},
		SalaryRange:      zar(600000, 800000),
		Benefits:         []string{"Medical Aid", "Pension Fund", "Flexible Hours"},
		Requirements:     []string{"5+ years React experience", "Strong TypeScript skills"},
		Responsibilities: []string{"Build scalable web applications", "Mentor junior developers"},
		Status:           project.StatusActive,
		Priority:         project.PriorityHigh,
	}},
	{recruiter: sarah, project: project.Project{
		Title:            "Data Scientist",
		Company:          "TechCorp Solutions",
		Description:      "Join our data science team to build ML models and analyze business data.",
		Location:         "Johannesburg, South Africa",
		RemoteOption:     project.RemoteOptionRemote,
		EmploymentType:   project.EmploymentFullTime,
		ExperienceLevel:  profile.ExperienceSenior,
		RequiredSkills:   []string{"Python", "Machine Learning", "SQL", "Statistics"},
		PreferredSkills:  []string{"TensorFlow", "PyTorch", "AWS", "Docker"},
		SalaryRange:      zar(700000, 900000),
		Benefits:         []string{"Medical Aid", "Pension Fund", "Learning Budget"},
		Requirements:     []string{"MSc in Data Science or related field", "3+ years ML experience"},
		Responsibilities: []string{"Build predictive models", "Analyze business metrics"},
		Status:           project.StatusActive,
		Priority:         project.PriorityHigh,
	}},
	{recruiter: mike, project: project.Project{
		Title:            "React Native Developer",
		Company:          "InnovateLab",
		Description:      "Build cutting-edge mobile applications for our fintech platform.",
		Location:         "Cape Town, South Africa",
		RemoteOption:     project.RemoteOptionHybrid,
		EmploymentType:   project.EmploymentFullTime,
		ExperienceLevel:  profile.ExperienceMid,
		RequiredSkills:   []string{"React Native", "JavaScript", "TypeScript", "Redux"},
		PreferredSkills:  []string{"Flutter", "Firebase", "GraphQL"},
		SalaryRange:      zar(500000, 700000),
		Benefits:         []string{"Medical Aid", "Stock Options", "Flexible Hours"},
		Requirements:     []string{"3+ years mobile development", "Published apps in stores"},
		Responsibilities: []string{"Develop mobile applications", "Optimize app performance"},
		Status:           project.StatusActive,
		Priority:         project.PriorityMedium,
	}},
	{recruiter: mike, project: project.Project{
		Title:            "Junior Frontend Developer",
		Company:          "InnovateLab",
		Description:      "Great opportunity for a junior developer to grow in a supportive environment.",
		Location:         "Cape Town, South Africa",
		RemoteOption:     project.RemoteOptionOnsite,
		EmploymentType:   project.EmploymentFullTime,
		ExperienceLevel:  profile.ExperienceEntry,
		RequiredSkills:   []string{"HTML", "CSS", "JavaScript", "React"},
		PreferredSkills:  []string{"TypeScript", "Git", "Responsive Design"},
		SalaryRange:      zar(300000, 450000),
		Benefits:         []string{"Medical Aid", "Mentorship Program", "Learning Budget"},
		Requirements:     []string{"Computer Science degree", "Portfolio of projects"},
		Responsibilities: []string{"Build user interfaces", "Learn from senior developers"},
		Status:           project.StatusActive,
		Priority:         project.PriorityLow,
	}},
}

var demoApplications = []demoApplication{
	{applicant: john, project: 0, status: application.StatusPending, score: 85, insights: matching.Insights{
		Strengths:       []string{"Strong React skills", "TypeScript experience", "Full-stack knowledge"},
		Gaps:            []string{"GraphQL experience needed", "Senior-level experience"},
		Recommendations: []string{"Complete GraphQL course", "Lead more projects"},
		MatchReasons:    []string{"React expertise matches requirement", "TypeScript proficiency"},
	}},
	{applicant: jane, project: 1, status: application.StatusInterviewed, score: 95, interviewDays: 3, insights: matching.Insights{
		Strengths:       []string{"Excellent Python skills", "Strong ML background", "Advanced degree"},
		Gaps:            []string{"Limited cloud experience"},
		Recommendations: []string{"AWS certification"},
		MatchReasons:    []string{"Perfect skill match", "Experience level aligns", "Educational background fits"},
	}},
	{applicant: david, project: 2, status: application.StatusShortlisted, score: 92, insights: matching.Insights{
		Strengths:       []string{"Expert React Native skills", "Cross-platform experience", "Strong portfolio"},
		Gaps:            []string{"Limited fintech experience"},
		Recommendations: []string{"Learn about financial regulations"},
		MatchReasons:    []string{"Perfect technical match", "Experience level fits", "Mobile expertise"},
	}},
	{applicant: lisa, project: 3, status: application.StatusPending, score: 88, insights: matching.Insights{
		Strengths:       []string{"Solid foundation skills", "Recent graduate", "Eager to learn"},
		Gaps:            []string{"Limited professional experience"},
		Recommendations: []string{"Build more portfolio projects"},
		MatchReasons:    []string{"Entry-level perfect match", "Core skills align", "Growth potential"},
	}},
}

// application is an index into demoApplications, or -1.
var demoNotifications = []demoNotification{
	{user: sarah, application: 0, n: notification.Notification{
		Type:    notification.TypeNewMatch,
		Title:   "New Application",
		Message: "John Doe applied to Senior React Developer with 85% match",
		Data:    map[string]any{"matchScore": 85},
	}},
	{user: john, application: 0, n: notification.Notification{
		Type:    notification.TypeApplicationStatus,
		Title:   "Application Submitted",
		Message: "Your application for Senior React Developer has been submitted",
	}},
	{user: jane, application: 1, n: notification.Notification{
		Type:    notification.TypeInterviewScheduled,
		Title:   "Interview Scheduled",
		Message: "Your interview for Data Scientist has been scheduled",
	}},
	{user: lisa, application: -1, n: notification.Notification{
		Type:    notification.TypeSkillRecommendation,
		Title:   "Skill Recommendation",
		Message: "Consider learning TypeScript to improve your job prospects",
		Data:    map[string]any{"skill": "TypeScript"},
	}},
}
