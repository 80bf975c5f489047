package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/taxonomy"
)

const (
	StepExtract   = "extract"
	StepReconcile = "reconcile"
	StepScore     = "score"
	StepClassify  = "classify"
	StepGate      = "gate"
	StepMarket    = "market"
	StepRecommend = "recommend"
)

// DefaultSteps returns a fresh set of steps in execution order.
func DefaultSteps() []Step {
	return []Step{
		&extractStep{},
		&reconcileStep{},
		&scoreStep{},
		&classifyStep{},
		&gateStep{},
		&marketStep{},
		&recommendStep{},
	}
}

// toggle carries the enabled state shared by every step.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) status(name string, details map[string]string) Status {
	return Status{Name: name, Enabled: !t.disabled, Reason: t.reason, Details: details}
}

type extractStep struct{ toggle }

func (s *extractStep) Name() string { return StepExtract }

func (s *extractStep) Validate(Deps) error { return nil }

func (s *extractStep) Apply(ctx context.Context, deps Deps, e *Evaluation) (Result, error) {
	if strings.TrimSpace(e.Extraction) != "" {
		return Result{Outcome: OutcomeSkipped, Detail: "extraction payload provided"}, nil
	}
	if deps.Extractor == nil {
		return Result{Outcome: OutcomeSkipped, Detail: "no extractor configured"}, nil
	}
	if strings.TrimSpace(e.Candidate.Transcript) == "" {
		return Result{Outcome: OutcomeSkipped, Detail: "no transcript"}, nil
	}

	raw, err := deps.Extractor.Extract(ctx, e.Candidate.Transcript)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Result{}, err
		}
		deps.Logger.Warn("extraction failed, profile will not be reconciled", zap.Error(err))
		return Result{Outcome: OutcomeFallback, Detail: err.Error()}, nil
	}

	e.Extraction = raw
	return Result{Outcome: OutcomeDone}, nil
}

func (s *extractStep) Status() Status { return s.status(s.Name(), nil) }

type reconcileStep struct{ toggle }

func (s *reconcileStep) Name() string { return StepReconcile }

func (s *reconcileStep) Validate(deps Deps) error {
	if deps.Reconciler == nil {
		return errors.New("profile reconciler is required")
	}
	return nil
}

func (s *reconcileStep) Apply(_ context.Context, deps Deps, e *Evaluation) (Result, error) {
	if strings.TrimSpace(e.Extraction) == "" {
		return Result{Outcome: OutcomeSkipped, Detail: "nothing extracted"}, nil
	}

	e.Profile = deps.Reconciler.Reconcile(e.Profile, e.Extraction)
	return Result{Outcome: OutcomeDone}, nil
}

func (s *reconcileStep) Status() Status { return s.status(s.Name(), nil) }

type scoreStep struct{ toggle }

func (s *scoreStep) Name() string { return StepScore }

func (s *scoreStep) Validate(Deps) error { return nil }

func (s *scoreStep) Apply(ctx context.Context, deps Deps, e *Evaluation) (Result, error) {
	if e.Candidate.Scores != nil {
		e.Scores = *e.Candidate.Scores
		return Result{Outcome: OutcomeSkipped, Detail: "scores provided"}, nil
	}

	if deps.Scorer == nil || strings.TrimSpace(e.Candidate.Transcript) == "" {
		e.Scores = compensation.DefaultScores()
		return Result{Outcome: OutcomeFallback, Detail: "no scorer or transcript, using default scores"}, nil
	}

	raw, err := deps.Scorer.Score(ctx, e.Candidate.Transcript)
	if err == nil {
		e.Scores, err = compensation.ParseScores(raw)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Result{}, err
		}
		deps.Logger.Warn("scoring failed, using default scores", zap.Error(err))
		e.Scores = compensation.DefaultScores()
		return Result{Outcome: OutcomeFallback, Detail: err.Error()}, nil
	}

	return Result{Outcome: OutcomeDone, Detail: fmt.Sprintf("overall %.1f", e.Scores.Overall)}, nil
}

func (s *scoreStep) Status() Status { return s.status(s.Name(), nil) }

type classifyStep struct{ toggle }

func (s *classifyStep) Name() string { return StepClassify }

func (s *classifyStep) Validate(deps Deps) error {
	if deps.Classifier == nil {
		return errors.New("classifier is required")
	}
	return nil
}

func (s *classifyStep) Apply(_ context.Context, deps Deps, e *Evaluation) (Result, error) {
	projects := e.Profile.ProjectTexts()

	title := deps.Classifier.Classify(e.Profile.TechnicalSkills, projects, e.Profile.TargetPosition)
	e.Title = taxonomy.CanonicalTitle(title)
	e.Directions = SkillDirections(e.Profile.TechnicalSkills, projects)

	return Result{Outcome: OutcomeDone, Detail: e.Title}, nil
}

func (s *classifyStep) Status() Status { return s.status(s.Name(), nil) }

type gateStep struct{ toggle }

func (s *gateStep) Name() string { return StepGate }

func (s *gateStep) Validate(Deps) error { return nil }

func (s *gateStep) Apply(_ context.Context, _ Deps, e *Evaluation) (Result, error) {
	e.Eligible = compensation.Eligible(e.Scores.Overall)
	detail := fmt.Sprintf("overall %.1f, threshold %.0f", e.Scores.Overall, compensation.EligibilityThreshold)
	if !e.Eligible {
		e.Stop()
		return Result{Outcome: OutcomeStopped, Detail: detail}, nil
	}

	return Result{Outcome: OutcomeDone, Detail: detail}, nil
}

func (s *gateStep) Status() Status {
	return s.status(s.Name(), map[string]string{
		"threshold": strconv.FormatFloat(compensation.EligibilityThreshold, 'f', -1, 64),
	})
}

type marketStep struct{ toggle }

func (s *marketStep) Name() string { return StepMarket }

func (s *marketStep) Validate(Deps) error { return nil }

func (s *marketStep) Apply(ctx context.Context, deps Deps, e *Evaluation) (Result, error) {
	if deps.Market == nil {
		return Result{Outcome: OutcomeSkipped, Detail: "no market provider configured"}, nil
	}

	stats, err := deps.Market.Stats(ctx, e.Title, deps.Location)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Result{}, err
		}
		deps.Logger.Warn("market data unavailable, baseline will be used",
			zap.String("title", e.Title),
			zap.Error(err),
		)
		return Result{Outcome: OutcomeFallback, Detail: err.Error()}, nil
	}

	e.Market = stats
	return Result{Outcome: OutcomeDone, Detail: fmt.Sprintf("%d samples", stats.SampleCount)}, nil
}

func (s *marketStep) Status() Status { return s.status(s.Name(), nil) }

type recommendStep struct{ toggle }

func (s *recommendStep) Name() string { return StepRecommend }

func (s *recommendStep) Validate(deps Deps) error {
	if deps.Engine == nil {
		return errors.New("compensation engine is required")
	}
	return nil
}

func (s *recommendStep) Apply(_ context.Context, deps Deps, e *Evaluation) (Result, error) {
	rec := deps.Engine.Recommend(e.Title, e.Scores.Overall, e.Market)
	e.Recommendation = &rec

	return Result{Outcome: OutcomeDone, Detail: fmt.Sprintf("%s (%s)", rec.Summary(), rec.Source)}, nil
}

func (s *recommendStep) Status() Status { return s.status(s.Name(), nil) }
