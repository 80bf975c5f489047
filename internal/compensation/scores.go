package compensation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/offer-advisor/internal/utils"
)

// FallbackScore is assigned to every round when the scoring output is unusable.
const FallbackScore = 75.0

var ErrNoScores = errors.New("no score object found")

// ScoreSet holds the interview round scores. Overall is taken as given.
type ScoreSet struct {
	Technical              float64  `json:"technical_score" mapstructure:"technical_score" validate:"gte=0,lte=100"`
	HR                     float64  `json:"hr_score" mapstructure:"hr_score" validate:"gte=0,lte=100"`
	Boss                   float64  `json:"boss_score" mapstructure:"boss_score" validate:"gte=0,lte=100"`
	Overall                float64  `json:"overall_score" mapstructure:"overall_score" validate:"gte=0,lte=100"`
	EvaluationSummary      string   `json:"evaluation_summary,omitempty" mapstructure:"evaluation_summary"`
	Recommendation         string   `json:"recommendation,omitempty" mapstructure:"recommendation"`
	ImprovementSuggestions []string `json:"improvement_suggestions,omitempty" mapstructure:"improvement_suggestions"`
}

// DefaultScores is used when no scoring output could be parsed.
func DefaultScores() ScoreSet {
	return ScoreSet{
		Technical: FallbackScore,
		HR:        FallbackScore,
		Boss:      FallbackScore,
		Overall:   FallbackScore,
	}
}

// Validate checks every score is within 0..100.
func (s ScoreSet) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid scores: %w", err)
	}
	return nil
}

// ParseScores reads a score record from model or file output. Numbers sent
// as strings and a single suggestion sent as a string are accepted.
func ParseScores(raw string) (ScoreSet, error) {
	cleaned := utils.ExtractJSONObject(raw)
	if cleaned == "" {
		return ScoreSet{}, ErrNoScores
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return ScoreSet{}, fmt.Errorf("decode scores: %w", err)
	}

	if _, ok := doc["overall_score"]; !ok {
		return ScoreSet{}, fmt.Errorf("decode scores: overall_score is missing")
	}

	var scores ScoreSet
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &scores,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return ScoreSet{}, err
	}

	if err := decoder.Decode(doc); err != nil {
		return ScoreSet{}, fmt.Errorf("decode scores: %w", err)
	}

	if err := scores.Validate(); err != nil {
		return ScoreSet{}, err
	}

	return scores, nil
}
