package compensation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Source string

const (
	SourceMarket   Source = "market"
	SourceBaseline Source = "baseline"
)

// Recommendation is the salary advice for one candidate. Amounts keep full
// precision; the text helpers round for display.
type Recommendation struct {
	Title       string  `json:"title"`
	Tier        string  `json:"tier"`
	Source      Source  `json:"source"`
	Suggested   float64 `json:"suggested"`
	RangeMin    float64 `json:"range_min"`
	RangeMax    float64 `json:"range_max"`
	Reference   float64 `json:"reference_average"`
	Currency    string  `json:"currency"`
	SampleCount int     `json:"sample_count,omitempty"`
}

var printer = message.NewPrinter(language.English)

// FormatAmount rounds to whole units and adds thousands separators.
func FormatAmount(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

func (r Recommendation) SuggestedText() string {
	return FormatAmount(r.Suggested)
}

// RangeText renders the range as "min-max".
func (r Recommendation) RangeText() string {
	return FormatAmount(r.RangeMin) + "-" + FormatAmount(r.RangeMax)
}

func (r Recommendation) ReferenceText() string {
	return FormatAmount(r.Reference)
}

// Spread is half the width of the suggested range.
func (r Recommendation) Spread() float64 {
	return (r.RangeMax - r.RangeMin) / 2
}

// Summary renders the suggested salary with its spread, e.g. "58,000 ± 4,000 GBP".
func (r Recommendation) Summary() string {
	return r.SuggestedText() + " ± " + FormatAmount(r.Spread()) + " " + r.Currency
}
