package compensation

import "github.com/spigell/offer-advisor/internal/taxonomy"

// Baseline is the static annual salary reference for a title when no
// market data is available.
type Baseline struct {
	Base   float64
	Spread float64
}

// GenericBaseline applies to titles missing from Baselines.
var GenericBaseline = Baseline{Base: 55000, Spread: 8000}

// Baselines is keyed by canonical title.
var Baselines = map[string]Baseline{
	taxonomy.TitleLLMEngineer:        {Base: 75000, Spread: 15000},
	taxonomy.TitleMLEngineer:         {Base: 70000, Spread: 12000},
	taxonomy.TitleAIEngineer:         {Base: 65000, Spread: 10000},
	taxonomy.TitleDataScientist:      {Base: 68000, Spread: 12000},
	taxonomy.TitleDataEngineer:       {Base: 62000, Spread: 10000},
	taxonomy.TitleCloudNativeBackend: {Base: 65000, Spread: 10000},
	taxonomy.TitleDevOpsEngineer:     {Base: 63000, Spread: 10000},
	taxonomy.TitleBackendDeveloper:   {Base: 58000, Spread: 8000},
	taxonomy.TitleFrontendDeveloper:  {Base: 55000, Spread: 8000},
	taxonomy.TitleFullStackDeveloper: {Base: 62000, Spread: 10000},
	taxonomy.TitleMobileDeveloper:    {Base: 60000, Spread: 10000},
	taxonomy.TitleSecurityEngineer:   {Base: 65000, Spread: 12000},
	taxonomy.TitleGameDeveloper:      {Base: 52000, Spread: 8000},
	taxonomy.TitleSoftwareEngineer:   {Base: 55000, Spread: 8000},
}

// LookupBaseline returns the baseline for title after alias normalization.
// The boolean is false when the generic entry was used.
func LookupBaseline(title string) (Baseline, bool) {
	if b, ok := Baselines[taxonomy.CanonicalTitle(title)]; ok {
		return b, true
	}
	return GenericBaseline, false
}
