// Package classify turns a candidate's skills and project descriptions into a
// job title using the weighted keyword taxonomy.
package classify

import (
	"sort"
	"strings"

	"github.com/spigell/offer-advisor/internal/taxonomy"
)

const (
	skillPoints   = 1.0
	projectPoints = 0.5
)

// Scores holds the weighted score of every taxonomy category for one profile.
type Scores map[taxonomy.CategoryID]float64

// Score computes a fresh Scores map. Every category is present, zero when nothing matched.
func Score(skills, projects []string) Scores {
	scores := make(Scores, len(taxonomy.Categories))

	for _, category := range taxonomy.Categories {
		raw := 0.0
		for _, skill := range skills {
			if MatchesAny(skill, category.Keywords) {
				raw += skillPoints
			}
		}
		for _, project := range projects {
			if MatchesAny(project, category.Keywords) {
				raw += projectPoints
			}
		}
		scores[category.ID] = raw * category.Weight
	}

	return scores
}

// MatchesAny reports whether any keyword is a substring of text.
// It stops at the first hit, so an item counts at most once per keyword set.
func MatchesAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// AnyMatches reports whether any of the texts matches any keyword.
func AnyMatches(texts []string, keywords []string) bool {
	for _, text := range texts {
		if MatchesAny(text, keywords) {
			return true
		}
	}
	return false
}

// IsZero reports whether nothing matched at all.
func (s Scores) IsZero() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Top returns the winning category: strictly highest score, ties resolved by
// declaration order in the taxonomy.
func (s Scores) Top() (taxonomy.CategoryID, float64) {
	var (
		best  taxonomy.CategoryID
		score float64
		found bool
	)

	for _, category := range taxonomy.Categories {
		v := s[category.ID]
		if !found || v > score {
			best, score, found = category.ID, v, true
		}
	}

	return best, score
}

// Ranked returns the categories with a positive score, best first.
func (s Scores) Ranked() []taxonomy.CategoryID {
	order := make(map[taxonomy.CategoryID]int, len(taxonomy.Categories))
	ranked := make([]taxonomy.CategoryID, 0, len(s))
	for i, category := range taxonomy.Categories {
		order[category.ID] = i
		if s[category.ID] > 0 {
			ranked = append(ranked, category.ID)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if s[ranked[i]] != s[ranked[j]] {
			return s[ranked[i]] > s[ranked[j]]
		}
		return order[ranked[i]] < order[ranked[j]]
	})

	return ranked
}
