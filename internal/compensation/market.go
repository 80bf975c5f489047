package compensation

import (
	"github.com/go-playground/validator/v10"
)

// DefaultCurrency is used when market data does not name one.
const DefaultCurrency = "GBP"

// MarketStats summarizes salaries observed for a title in the market.
type MarketStats struct {
	Average     float64 `json:"average_salary" validate:"gte=0"`
	Min         float64 `json:"min_salary" validate:"gte=0"`
	Max         float64 `json:"max_salary" validate:"gt=0,gtefield=Min"`
	SampleCount int     `json:"sample_count" validate:"gt=0"`
	Currency    string  `json:"currency"`
}

var validate = validator.New()

// Usable reports whether the stats can drive a recommendation.
func (m *MarketStats) Usable() bool {
	if m == nil {
		return false
	}
	return validate.Struct(m) == nil
}

func (m *MarketStats) currency() string {
	if m == nil || m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}
