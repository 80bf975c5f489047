package compensation

// EligibilityThreshold is the lowest overall score that earns an offer.
const EligibilityThreshold = 60.0

// Tier maps a range of overall scores to salary positioning.
type Tier struct {
	Name  string
	Floor float64

	// Market path: percentile within the observed min..max range.
	Midpoint float64
	BandLow  float64
	BandHigh float64

	// Baseline path multipliers.
	BaseFactor      float64
	SpreadFactor    float64
	ReferenceFactor float64
}

// Tiers are ordered from the highest floor down.
var Tiers = []Tier{
	{Name: "top", Floor: 78, Midpoint: 0.82, BandLow: 0.75, BandHigh: 0.90, BaseFactor: 1.2, SpreadFactor: 0.8, ReferenceFactor: 1.1},
	{Name: "strong", Floor: 70, Midpoint: 0.67, BandLow: 0.60, BandHigh: 0.75, BaseFactor: 1.1, SpreadFactor: 0.6, ReferenceFactor: 1.05},
	{Name: "qualified", Floor: 60, Midpoint: 0.50, BandLow: 0.40, BandHigh: 0.60, BaseFactor: 1.0, SpreadFactor: 0.5, ReferenceFactor: 0.95},
}

// marketBandWidth is the half-width of the suggested range as a share of max-min.
const marketBandWidth = 0.05

// TierFor returns the tier an overall score falls into. Scores below the
// eligibility threshold land in the lowest tier.
func TierFor(overall float64) Tier {
	for _, t := range Tiers {
		if overall >= t.Floor {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// Eligible reports whether the overall score qualifies for an offer.
func Eligible(overall float64) bool {
	return overall >= EligibilityThreshold
}
