// Package market looks up salaries advertised for a title and turns them
// into the statistics the compensation engine consumes.
package market

import (
	"context"
	"errors"
	"math"

	"github.com/spigell/offer-advisor/internal/compensation"
)

// ErrNoSalaryData is returned when no listing carries a full salary range.
var ErrNoSalaryData = errors.New("no listings with salary data")

// Provider resolves market statistics for a title in a location.
type Provider interface {
	Stats(ctx context.Context, title, location string) (*compensation.MarketStats, error)
}

// Listing is one job advert. Salary bounds are nil when the advert omits them.
type Listing struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	RedirectURL string   `json:"redirect_url,omitempty"`
	Created     string   `json:"created,omitempty"`
	Company     struct {
		DisplayName string `json:"display_name,omitempty"`
	} `json:"company,omitempty"`
	Location struct {
		DisplayName string `json:"display_name,omitempty"`
	} `json:"location,omitempty"`
}

// Midpoint returns the middle of the advertised range. Both bounds must be
// positive.
func (l Listing) Midpoint() (float64, bool) {
	if l.SalaryMin == nil || l.SalaryMax == nil || *l.SalaryMin <= 0 || *l.SalaryMax <= 0 {
		return 0, false
	}
	return (*l.SalaryMin + *l.SalaryMax) / 2, true
}

// Analyze aggregates the midpoints of listings that advertise both bounds.
// Values are rounded to two decimals.
func Analyze(listings []Listing, currency string) (*compensation.MarketStats, error) {
	if currency == "" {
		currency = compensation.DefaultCurrency
	}

	var (
		sum    float64
		lo, hi float64
		count  int
	)
	for _, l := range listings {
		mid, ok := l.Midpoint()
		if !ok {
			continue
		}

		if count == 0 || mid < lo {
			lo = mid
		}
		if count == 0 || mid > hi {
			hi = mid
		}
		sum += mid
		count++
	}

	if count == 0 {
		return nil, ErrNoSalaryData
	}

	return &compensation.MarketStats{
		Average:     round2(sum / float64(count)),
		Min:         round2(lo),
		Max:         round2(hi),
		SampleCount: count,
		Currency:    currency,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
