// Package evaluation runs a candidate through the ordered steps that end in a
// salary recommendation.
package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/offer-advisor/internal/ai"
	"github.com/spigell/offer-advisor/internal/classify"
	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/logger"
	"github.com/spigell/offer-advisor/internal/market"
	"github.com/spigell/offer-advisor/internal/profile"
)

// Step represents a single stage of an evaluation.
type Step interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(deps Deps) error
	Apply(ctx context.Context, deps Deps, e *Evaluation) (Result, error)
}

// Deps aggregates dependencies shared across all steps. Optional ones may be nil.
type Deps struct {
	Extractor  ai.Extractor
	Scorer     ai.Scorer
	Reconciler *profile.Reconciler
	Classifier *classify.Classifier
	Engine     *compensation.Engine
	Market     market.Provider
	Location   string
	Logger     *zap.Logger
}

type Outcome string

const (
	OutcomeDone     Outcome = "done"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFallback Outcome = "fallback"
	OutcomeStopped  Outcome = "stopped"
)

// Result describes what a step did.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Detail  string  `json:"detail,omitempty"`
}

// StepReport is a Result tagged with the step name.
type StepReport struct {
	Name string `json:"name"`
	Result
}

// Evaluation accumulates the state of one candidate as steps run.
type Evaluation struct {
	ID             string                       `json:"id"`
	Candidate      Candidate                    `json:"-"`
	Profile        profile.CandidateProfile     `json:"profile"`
	Extraction     string                       `json:"-"`
	Scores         compensation.ScoreSet        `json:"scores"`
	Title          string                       `json:"title,omitempty"`
	Directions     []Direction                  `json:"skill_directions,omitempty"`
	Eligible       bool                         `json:"eligible"`
	Market         *compensation.MarketStats    `json:"market,omitempty"`
	Recommendation *compensation.Recommendation `json:"recommendation,omitempty"`
	Steps          []StepReport                 `json:"steps"`

	stopped bool
}

// Stop prevents the remaining steps from running.
func (e *Evaluation) Stop() {
	e.stopped = true
}

func (e *Evaluation) Stopped() bool {
	return e.stopped
}

// Status represents runtime information about a step.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by steps that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Step, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Validate checks every enabled step against deps.
func Validate(deps Deps, steps []Step) error {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(deps); err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return nil
}

// Run executes the supplied steps sequentially for one candidate.
func Run(ctx context.Context, deps Deps, steps []Step, c Candidate) (*Evaluation, error) {
	if err := Validate(deps, steps); err != nil {
		return nil, err
	}

	return run(ctx, deps, steps, c)
}

func run(ctx context.Context, deps Deps, steps []Step, c Candidate) (*Evaluation, error) {
	e := &Evaluation{
		ID:         uuid.NewString(),
		Candidate:  c,
		Profile:    c.Profile.Clone(),
		Extraction: c.Extraction,
	}

	log := logger.WithFields(deps.Logger, logger.CandidateFields(e.ID, e.Profile.Name, "")...)
	deps.Logger = log

	for _, step := range steps {
		if !step.IsEnabled() {
			log.Debug("step disabled", zap.String("name", step.Name()))
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := step.Apply(ctx, deps, e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		e.Steps = append(e.Steps, StepReport{Name: step.Name(), Result: res})
		log.Info("evaluation step",
			zap.String("name", step.Name()),
			zap.String("outcome", string(res.Outcome)),
			zap.String("detail", res.Detail),
		)

		if e.stopped {
			log.Info("evaluation stopped", zap.String("after", step.Name()))
			break
		}
	}

	return e, nil
}

// RunBatch evaluates candidates in parallel, at most limit at a time. Results
// keep the order of candidates. The first failure cancels the rest.
func RunBatch(ctx context.Context, deps Deps, steps []Step, candidates []Candidate, limit int) ([]*Evaluation, error) {
	if err := Validate(deps, steps); err != nil {
		return nil, err
	}

	results := make([]*Evaluation, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, c := range candidates {
		g.Go(func() error {
			e, err := run(ctx, deps, steps, c)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			results[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Step) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
