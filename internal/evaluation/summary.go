package evaluation

import (
	"github.com/spigell/offer-advisor/internal/classify"
	"github.com/spigell/offer-advisor/internal/taxonomy"
)

const maxDirections = 3

// Direction is one skill area the candidate leans towards.
type Direction struct {
	Category taxonomy.CategoryID `json:"category"`
	Label    string              `json:"label"`
	Score    float64             `json:"score"`
}

// SkillDirections returns up to three categories with a positive score,
// strongest first.
func SkillDirections(skills, projects []string) []Direction {
	scores := classify.Score(skills, projects)

	var out []Direction
	for _, id := range scores.Ranked() {
		if len(out) == maxDirections {
			break
		}
		out = append(out, Direction{Category: id, Label: taxonomy.Label(id), Score: scores[id]})
	}

	return out
}
