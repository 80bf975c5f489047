// Package profile holds the candidate profile and merges freshly extracted
// interview data into it.
package profile

import (
	"strings"

	"github.com/spigell/offer-advisor/internal/taxonomy"
)

// CandidateProfile is the caller-owned view of a candidate. Any field may be
// unknown; string fields use taxonomy.Unknown or an empty value for that.
type CandidateProfile struct {
	Name              string    `json:"name" mapstructure:"name"`
	Age               string    `json:"age" mapstructure:"age"`
	Education         string    `json:"education" mapstructure:"education"`
	ExperienceYears   string    `json:"experience_years" mapstructure:"experience_years"`
	CurrentPosition   string    `json:"current_position" mapstructure:"current_position"`
	TargetPosition    string    `json:"target_position" mapstructure:"target_position"`
	TechnicalSkills   []string  `json:"technical_skills" mapstructure:"technical_skills"`
	KeyProjects       []Project `json:"key_projects" mapstructure:"key_projects"`
	CareerGoals       string    `json:"career_goals" mapstructure:"career_goals"`
	SalaryExpectation string    `json:"salary_expectation" mapstructure:"salary_expectation"`
}

type Project struct {
	Name             string `json:"name" mapstructure:"name"`
	Duration         string `json:"duration,omitempty" mapstructure:"duration"`
	TechStack        string `json:"tech_stack,omitempty" mapstructure:"tech_stack"`
	Responsibilities string `json:"responsibilities,omitempty" mapstructure:"responsibilities"`
	Achievements     string `json:"achievements,omitempty" mapstructure:"achievements"`
}

// Unknown returns a profile with every scalar field set to the unknown placeholder.
func Unknown() CandidateProfile {
	return CandidateProfile{
		Name:              taxonomy.Unknown,
		Age:               taxonomy.Unknown,
		Education:         taxonomy.Unknown,
		ExperienceYears:   taxonomy.Unknown,
		CurrentPosition:   taxonomy.Unknown,
		TargetPosition:    taxonomy.Unknown,
		CareerGoals:       taxonomy.Unknown,
		SalaryExpectation: taxonomy.Unknown,
	}
}

// Text flattens the project into one line used for keyword matching.
func (p Project) Text() string {
	parts := make([]string, 0, 5)
	for _, v := range []string{p.Name, p.Duration, p.TechStack, p.Responsibilities, p.Achievements} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

// ProjectTexts returns the keyword-matching text of every project.
func (c CandidateProfile) ProjectTexts() []string {
	texts := make([]string, 0, len(c.KeyProjects))
	for _, p := range c.KeyProjects {
		texts = append(texts, p.Text())
	}
	return texts
}

// HasTargetPosition reports whether the target title is known.
func (c CandidateProfile) HasTargetPosition() bool {
	return !taxonomy.IsUnknown(c.TargetPosition)
}

// Clone returns a deep copy so callers never share slices.
func (c CandidateProfile) Clone() CandidateProfile {
	out := c
	if c.TechnicalSkills != nil {
		out.TechnicalSkills = append([]string(nil), c.TechnicalSkills...)
	}
	if c.KeyProjects != nil {
		out.KeyProjects = append([]Project(nil), c.KeyProjects...)
	}
	return out
}
