package profile

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/taxonomy"
)

// TitleClassifier derives a job title when the profile does not carry one.
type TitleClassifier interface {
	Classify(skills, projects []string, explicit string) string
}

// Reconciler merges extractor output into an existing profile.
type Reconciler struct {
	classifier TitleClassifier
	logger     *zap.Logger
}

func NewReconciler(classifier TitleClassifier, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reconciler{classifier: classifier, logger: logger}
}

// Reconcile parses raw extractor output and merges it into existing.
// A malformed payload leaves existing untouched.
func (r *Reconciler) Reconcile(existing CandidateProfile, raw string) CandidateProfile {
	extraction, err := ParseExtraction(raw)
	if err != nil {
		r.logger.Warn("extraction payload rejected, keeping existing profile",
			zap.Error(err),
		)
		return existing.Clone()
	}

	return r.ReconcileExtraction(existing, extraction)
}

// ReconcileExtraction merges an already parsed extraction and fills in the
// target position through the classifier when it is still unknown.
func (r *Reconciler) ReconcileExtraction(existing CandidateProfile, extraction *Extraction) CandidateProfile {
	merged := Merge(existing, extraction)

	if merged.HasTargetPosition() || r.classifier == nil {
		return merged
	}

	title := r.classifier.Classify(merged.TechnicalSkills, merged.ProjectTexts(), merged.TargetPosition)
	r.logger.Debug("target position derived from skills",
		zap.String("title", title),
		zap.Int("skills", len(merged.TechnicalSkills)),
		zap.Int("projects", len(merged.KeyProjects)),
	)
	merged.TargetPosition = title

	return merged
}

// Merge applies the field rules. The extracted target position, skills and
// projects never replace what the profile already holds.
func Merge(existing CandidateProfile, extraction *Extraction) CandidateProfile {
	merged := existing.Clone()
	if extraction == nil {
		return merged
	}

	if extraction.Name != nil && !IsPlaceholderName(*extraction.Name) {
		merged.Name = strings.TrimSpace(*extraction.Name)
	}

	overwrite(&merged.Age, extraction.Age)
	overwrite(&merged.Education, extraction.Education)
	overwrite(&merged.ExperienceYears, extraction.ExperienceYears)
	overwrite(&merged.CurrentPosition, extraction.CurrentPosition)
	overwrite(&merged.CareerGoals, extraction.CareerGoals)
	overwrite(&merged.SalaryExpectation, extraction.SalaryExpectation)

	return merged
}

var placeholderNames = []string{"候选人", "candidate"}

// IsPlaceholderName reports whether name is empty, unknown or a generic stand-in.
func IsPlaceholderName(name string) bool {
	if taxonomy.IsUnknown(name) {
		return true
	}

	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range placeholderNames {
		if name == p {
			return true
		}
	}

	return false
}

func overwrite(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
