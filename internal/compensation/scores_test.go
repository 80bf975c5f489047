package compensation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		raw := "```json\n" + `{
		  "technical_score": 82, "hr_score": "74", "boss_score": 80, "overall_score": 79.5,
		  "evaluation_summary": "Solid engineer",
		  "improvement_suggestions": ["System design depth", "Public speaking"]
		}` + "\n```"

		got, err := ParseScores(raw)
		require.NoError(t, err)
		assert.InDelta(t, 74, got.HR, 1e-9)
		assert.InDelta(t, 79.5, got.Overall, 1e-9)
		assert.Equal(t, "Solid engineer", got.EvaluationSummary)
		assert.Len(t, got.ImprovementSuggestions, 2)
	})

	t.Run("single suggestion string", func(t *testing.T) {
		got, err := ParseScores(`{"overall_score": 65, "improvement_suggestions": "Practice SQL"}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"Practice SQL"}, got.ImprovementSuggestions)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ParseScores(`{"overall_score": 140}`)
		assert.ErrorContains(t, err, "invalid scores")
	})

	t.Run("missing overall", func(t *testing.T) {
		_, err := ParseScores(`{"technical_score": 80}`)
		assert.ErrorContains(t, err, "overall_score is missing")
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ParseScores("the candidate did well")
		assert.ErrorIs(t, err, ErrNoScores)
	})
}

func TestDefaultScores(t *testing.T) {
	s := DefaultScores()
	require.NoError(t, s.Validate())
	assert.Equal(t, FallbackScore, s.Overall)
	assert.True(t, Eligible(s.Overall))
}
