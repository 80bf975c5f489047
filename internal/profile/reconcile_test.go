package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/offer-advisor/internal/classify"
	"github.com/spigell/offer-advisor/internal/taxonomy"
)

const fullPayload = `{
  "name": "Li Wei",
  "age": 29,
  "education": "MSc Computer Science",
  "experience_years": "5",
  "current_position": "Senior Engineer",
  "target_position": "Frontend Developer",
  "technical_skills": ["React", "Vue"],
  "key_projects": ["Dashboard rewrite"],
  "career_goals": "Lead a platform team",
  "salary_expectation": null
}`

func existingProfile() CandidateProfile {
	p := Unknown()
	p.Name = "Zhang San"
	p.TargetPosition = "Backend Developer"
	p.TechnicalSkills = []string{"Django", "MySQL"}
	p.KeyProjects = []Project{{Name: "Order service", TechStack: "Django, Redis"}}
	p.SalaryExpectation = "60000"
	return p
}

func newReconciler() *Reconciler {
	return NewReconciler(classify.New(nil), zap.NewNop())
}

func TestReconcileFieldRules(t *testing.T) {
	got := newReconciler().Reconcile(existingProfile(), fullPayload)

	assert.Equal(t, "Li Wei", got.Name)
	assert.Equal(t, "29", got.Age)
	assert.Equal(t, "MSc Computer Science", got.Education)
	assert.Equal(t, "5", got.ExperienceYears)
	assert.Equal(t, "Senior Engineer", got.CurrentPosition)
	assert.Equal(t, "Lead a platform team", got.CareerGoals)

	assert.Equal(t, "Backend Developer", got.TargetPosition)
	assert.Equal(t, []string{"Django", "MySQL"}, got.TechnicalSkills)
	assert.Equal(t, []Project{{Name: "Order service", TechStack: "Django, Redis"}}, got.KeyProjects)

	assert.Equal(t, "60000", got.SalaryExpectation, "null keeps the existing value")
}

func TestReconcilePlaceholderName(t *testing.T) {
	for _, name := range []string{"unknown", "未知", "候选人", "Candidate", "", "  "} {
		t.Run(name, func(t *testing.T) {
			payload := `{"name": "` + name + `", "age": null, "education": null, "experience_years": null,
				"current_position": null, "target_position": null, "technical_skills": [], "key_projects": [],
				"career_goals": null, "salary_expectation": null}`

			got := newReconciler().Reconcile(existingProfile(), payload)
			assert.Equal(t, "Zhang San", got.Name)
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	r := newReconciler()
	existing := Unknown()
	existing.TechnicalSkills = []string{"large-model fine-tuning", "LoRA", "Python"}

	once := r.Reconcile(existing, fullPayload)
	twice := r.Reconcile(once, fullPayload)

	assert.Equal(t, once, twice)
}

func TestReconcilePreservesTargetPosition(t *testing.T) {
	payloads := []string{
		fullPayload,
		`{"name": null, "age": null, "education": null, "experience_years": null, "current_position": null,
		  "target_position": "unknown", "technical_skills": null, "key_projects": null, "career_goals": null,
		  "salary_expectation": null}`,
		"not json at all",
	}

	for _, payload := range payloads {
		got := newReconciler().Reconcile(existingProfile(), payload)
		assert.Equal(t, "Backend Developer", got.TargetPosition)
	}
}

func TestReconcileClassifiesUnknownTarget(t *testing.T) {
	existing := Unknown()
	existing.TechnicalSkills = []string{"large-model fine-tuning", "LoRA", "Python"}

	got := newReconciler().Reconcile(existing, fullPayload)

	assert.Equal(t, taxonomy.TitleLLMEngineer, got.TargetPosition)
}

func TestReconcileMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "prose only", raw: "I could not extract anything."},
		{name: "broken json", raw: `{"name": "Li Wei",`},
		{name: "missing keys", raw: `{"name": "Li Wei", "age": 30}`},
		{name: "not an object", raw: `["Li Wei", 30]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, observed := observer.New(zapcore.WarnLevel)
			r := NewReconciler(classify.New(nil), zap.New(core))

			existing := existingProfile()
			got := r.Reconcile(existing, tt.raw)

			assert.Equal(t, existing, got)
			assert.Equal(t, 1, observed.FilterMessage("extraction payload rejected, keeping existing profile").Len())
		})
	}
}

func TestReconcileAcceptsLooselyShapedValues(t *testing.T) {
	payload := `{
	  "name": "Li Wei",
	  "age": 29,
	  "education": "MSc Computer Science",
	  "experience_years": ["5", "years"],
	  "current_position": {"title": "Senior Engineer", "company": null},
	  "target_position": {"title": "Data Engineer"},
	  "technical_skills": "Python, Go",
	  "key_projects": 3,
	  "career_goals": null,
	  "salary_expectation": {"min": 60000, "max": 70000}
	}`

	existing := existingProfile()
	got := newReconciler().Reconcile(existing, payload)

	assert.Equal(t, "Li Wei", got.Name)
	assert.Equal(t, "29", got.Age)
	assert.Equal(t, "MSc Computer Science", got.Education)
	assert.Equal(t, "5, years", got.ExperienceYears)
	assert.Equal(t, "title: Senior Engineer", got.CurrentPosition)
	assert.Equal(t, "max: 70000, min: 60000", got.SalaryExpectation)

	assert.Equal(t, existing.TargetPosition, got.TargetPosition)
	assert.Equal(t, existing.TechnicalSkills, got.TechnicalSkills)
	assert.Equal(t, existing.KeyProjects, got.KeyProjects)
}

func TestReconcileDoesNotClassifyOnMalformedPayload(t *testing.T) {
	got := newReconciler().Reconcile(Unknown(), "garbage")
	assert.Equal(t, taxonomy.Unknown, got.TargetPosition)
}

func TestReconcileDoesNotShareSlices(t *testing.T) {
	existing := existingProfile()
	got := newReconciler().Reconcile(existing, fullPayload)

	got.TechnicalSkills[0] = "Changed"
	assert.Equal(t, "Django", existing.TechnicalSkills[0])
}

func TestParseExtraction(t *testing.T) {
	t.Run("fenced payload with coercion", func(t *testing.T) {
		raw := "```json\n" + `{
		  "name": "Li Wei", "age": 31.5, "education": "BSc", "experience_years": 7,
		  "current_position": null, "target_position": null,
		  "technical_skills": ["Go", "Kafka"],
		  "key_projects": [
		    {"name": "Billing", "duration": "2021-2023", "tech_stack": ["Go", "Kafka"], "achievements": "2x throughput"},
		    "Search relaunch"
		  ],
		  "career_goals": null, "salary_expectation": "70k"
		}` + "\n```"

		got, err := ParseExtraction(raw)
		require.NoError(t, err)

		require.NotNil(t, got.Age)
		assert.Equal(t, "31.5", *got.Age)
		require.NotNil(t, got.ExperienceYears)
		assert.Equal(t, "7", *got.ExperienceYears)
		assert.Nil(t, got.CurrentPosition)
		assert.Equal(t, []string{"Go", "Kafka"}, got.TechnicalSkills)
		assert.Equal(t, []Project{
			{Name: "Billing", Duration: "2021-2023", TechStack: "Go, Kafka", Achievements: "2x throughput"},
			{Name: "Search relaunch"},
		}, got.KeyProjects)
	})

	t.Run("prose around the object", func(t *testing.T) {
		raw := "Here is the profile: " + fullPayload + " Hope this helps."
		got, err := ParseExtraction(raw)
		require.NoError(t, err)
		assert.Equal(t, "Li Wei", *got.Name)
	})

	t.Run("undecodable lists are dropped", func(t *testing.T) {
		got, err := ParseExtraction(`{"name": "Li Wei", "age": null, "education": null, "experience_years": null,
		  "current_position": null, "target_position": null, "technical_skills": ["Go"], "key_projects": 7,
		  "career_goals": {"short": "lead", "long": null}, "salary_expectation": null}`)
		require.NoError(t, err)

		assert.Nil(t, got.TechnicalSkills)
		assert.Nil(t, got.KeyProjects)
		require.NotNil(t, got.CareerGoals)
		assert.Equal(t, "short: lead", *got.CareerGoals)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ParseExtraction("nothing here")
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})

	t.Run("schema violation lists fields", func(t *testing.T) {
		_, err := ParseExtraction(`{"name": "Li Wei"}`)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.NotEmpty(t, verr.Errors)
		assert.Contains(t, err.Error(), "extraction payload is invalid")
	})
}

func TestProjectText(t *testing.T) {
	p := Project{Name: "Billing", TechStack: "Go", Achievements: " "}
	assert.Equal(t, "Billing | Go", p.Text())
}

func TestIsPlaceholderName(t *testing.T) {
	assert.True(t, IsPlaceholderName("CANDIDATE"))
	assert.True(t, IsPlaceholderName("null"))
	assert.False(t, IsPlaceholderName("Ann"))
}
