package classify

import (
	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/taxonomy"
)

// Classifier maps a candidate's skills and projects to a single job title.
// It holds no per-call state and is safe for concurrent use.
type Classifier struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Classifier{logger: logger}
}

// Classify returns explicit unchanged when it carries a real title. Otherwise
// the title is derived from the taxonomy scores.
func (c *Classifier) Classify(skills, projects []string, explicit string) string {
	if !taxonomy.IsUnknown(explicit) {
		return explicit
	}

	scores := Score(skills, projects)
	if scores.IsZero() {
		c.logger.Debug("no taxonomy keyword matched, using default title",
			zap.String("title", taxonomy.DefaultTitle),
		)
		return taxonomy.DefaultTitle
	}

	winner, top := scores.Top()
	title := c.pick(winner, skills, projects)

	c.logger.Debug("classified candidate",
		zap.String("category", string(winner)),
		zap.Float64("score", top),
		zap.Any("scores", scores),
		zap.String("title", title),
	)

	return title
}

func (c *Classifier) pick(winner taxonomy.CategoryID, skills, projects []string) string {
	if OverrideApplies(winner, skills, projects) {
		c.logger.Debug("large model indicators found, preferring AI title",
			zap.String("category", string(winner)),
		)
		return AISubTitle(skills)
	}

	switch winner {
	case taxonomy.AIML:
		return AISubTitle(skills)
	case taxonomy.Backend:
		return BackendSubTitle(skills)
	default:
		category, _ := taxonomy.Lookup(winner)
		return category.Default()
	}
}
