// Package compensation turns an interview score and optional market data
// into a salary recommendation.
package compensation

import (
	"go.uber.org/zap"
)

// Engine is stateless and safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{logger: logger}
}

// Recommend never fails: unusable market data falls back to the baseline
// table, an unknown title to the generic baseline.
func (e *Engine) Recommend(title string, overall float64, market *MarketStats) Recommendation {
	tier := TierFor(overall)
	if !Eligible(overall) {
		e.logger.Warn("recommending for a score below the eligibility threshold",
			zap.Float64("overall", overall),
			zap.String("tier", tier.Name),
		)
	}

	if market.Usable() {
		return e.fromMarket(title, tier, market)
	}

	if market != nil {
		e.logger.Warn("market data unusable, using baseline",
			zap.Float64("min", market.Min),
			zap.Float64("max", market.Max),
			zap.Int("samples", market.SampleCount),
		)
	}

	return e.fromBaseline(title, tier)
}

func (e *Engine) fromMarket(title string, tier Tier, market *MarketStats) Recommendation {
	width := market.Max - market.Min
	suggested := market.Min + width*tier.Midpoint
	half := width * marketBandWidth

	e.logger.Debug("salary from market data",
		zap.String("title", title),
		zap.String("tier", tier.Name),
		zap.Float64("percentile", tier.Midpoint),
		zap.Float64("band_low", tier.BandLow),
		zap.Float64("band_high", tier.BandHigh),
		zap.Float64("suggested", suggested),
	)

	return Recommendation{
		Title:       title,
		Tier:        tier.Name,
		Source:      SourceMarket,
		Suggested:   suggested,
		RangeMin:    suggested - half,
		RangeMax:    suggested + half,
		Reference:   market.Average,
		Currency:    market.currency(),
		SampleCount: market.SampleCount,
	}
}

func (e *Engine) fromBaseline(title string, tier Tier) Recommendation {
	baseline, found := LookupBaseline(title)
	if !found {
		e.logger.Debug("no baseline for title, using generic entry",
			zap.String("title", title),
		)
	}

	suggested := baseline.Base * tier.BaseFactor
	half := baseline.Spread * tier.SpreadFactor

	e.logger.Debug("salary from baseline",
		zap.String("title", title),
		zap.String("tier", tier.Name),
		zap.Float64("suggested", suggested),
	)

	return Recommendation{
		Title:     title,
		Tier:      tier.Name,
		Source:    SourceBaseline,
		Suggested: suggested,
		RangeMin:  suggested - half,
		RangeMax:  suggested + half,
		Reference: baseline.Base * tier.ReferenceFactor,
		Currency:  DefaultCurrency,
	}
}
