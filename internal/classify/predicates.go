package classify

import (
	"github.com/spigell/offer-advisor/internal/taxonomy"
)

// HasLargeModelIndicator reports whether any skill or project mentions
// large-model work (including LoRA fine-tuning).
func HasLargeModelIndicator(skills, projects []string) bool {
	return AnyMatches(skills, taxonomy.OverrideKeywords) || AnyMatches(projects, taxonomy.OverrideKeywords)
}

// OverrideApplies reports whether the large-model override replaces the
// regular pick. Only the AI/ML and backend categories can be overridden.
func OverrideApplies(winner taxonomy.CategoryID, skills, projects []string) bool {
	if winner != taxonomy.AIML && winner != taxonomy.Backend {
		return false
	}
	return HasLargeModelIndicator(skills, projects)
}

// AISubTitle picks the most specific AI title the skills support:
// large-model specialist, then ML engineer, then generic AI engineer.
func AISubTitle(skills []string) string {
	switch {
	case AnyMatches(skills, taxonomy.LargeModelKeywords):
		return taxonomy.TitleLLMEngineer
	case AnyMatches(skills, taxonomy.MLKeywords):
		return taxonomy.TitleMLEngineer
	default:
		return taxonomy.TitleAIEngineer
	}
}

// BackendSubTitle picks the cloud-native backend title when the skills mention
// cloud or microservice work, the category default otherwise.
func BackendSubTitle(skills []string) string {
	if AnyMatches(skills, taxonomy.CloudBackendKeywords) {
		return taxonomy.TitleCloudNativeBackend
	}

	backend, _ := taxonomy.Lookup(taxonomy.Backend)
	return backend.Default()
}
