// Package offer renders the offer document for an eligible evaluation.
package offer

import (
	_ "embed"
	"errors"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/evaluation"
	"github.com/spigell/offer-advisor/internal/profile"
)

// ErrNotEligible is returned for evaluations that did not pass the score gate.
var ErrNotEligible = errors.New("candidate is not eligible for an offer")

const (
	defaultSummary = "The candidate performed well overall and meets the requirements of the role."
	fallbackName   = "Candidate"
	dateLayout     = "2 January 2006"
)

//go:embed offer.md.tmpl
var offerTemplate string

// Company holds the letterhead details.
type Company struct {
	Name      string `mapstructure:"name"`
	Location  string `mapstructure:"location"`
	Email     string `mapstructure:"email"`
	Phone     string `mapstructure:"phone"`
	ReplyDays int    `mapstructure:"reply-days"`
}

// DefaultCompany is used for every empty Company field.
func DefaultCompany() Company {
	return Company{
		Name:      "[Company Name]",
		Location:  "London",
		Email:     "hr@company.com",
		Phone:     "+44 20 1234 5678",
		ReplyDays: 7,
	}
}

type Composer struct {
	company Company
	tmpl    *template.Template
	now     func() time.Time
}

func NewComposer(company Company) (*Composer, error) {
	tmpl, err := template.New("offer").Funcs(template.FuncMap{
		"score": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	}).Parse(offerTemplate)
	if err != nil {
		return nil, err
	}

	return &Composer{company: withDefaults(company), tmpl: tmpl, now: time.Now}, nil
}

type view struct {
	Name       string
	Title      string
	Date       string
	Summary    string
	Source     compensation.Source
	Scores     compensation.ScoreSet
	Rec        compensation.Recommendation
	Directions []evaluation.Direction
	Company    Company
}

// Compose renders the offer as Markdown.
func (c *Composer) Compose(e *evaluation.Evaluation) (string, error) {
	var sb strings.Builder
	if err := c.Write(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (c *Composer) Write(w io.Writer, e *evaluation.Evaluation) error {
	if e == nil || !e.Eligible || e.Recommendation == nil {
		return ErrNotEligible
	}

	title := e.Recommendation.Title
	if title == "" {
		title = e.Title
	}

	summary := strings.TrimSpace(e.Scores.EvaluationSummary)
	if summary == "" {
		summary = defaultSummary
	}

	return c.tmpl.Execute(w, view{
		Name:       DisplayName(e.Profile),
		Title:      title,
		Date:       c.now().Format(dateLayout),
		Summary:    summary,
		Source:     e.Recommendation.Source,
		Scores:     e.Scores,
		Rec:        *e.Recommendation,
		Directions: e.Directions,
		Company:    c.company,
	})
}

// DisplayName is the candidate name, or a neutral stand-in when unknown.
func DisplayName(p profile.CandidateProfile) string {
	if profile.IsPlaceholderName(p.Name) {
		return fallbackName
	}
	return strings.TrimSpace(p.Name)
}

func withDefaults(c Company) Company {
	d := DefaultCompany()
	if strings.TrimSpace(c.Name) == "" {
		c.Name = d.Name
	}
	if strings.TrimSpace(c.Location) == "" {
		c.Location = d.Location
	}
	if strings.TrimSpace(c.Email) == "" {
		c.Email = d.Email
	}
	if strings.TrimSpace(c.Phone) == "" {
		c.Phone = d.Phone
	}
	if c.ReplyDays <= 0 {
		c.ReplyDays = d.ReplyDays
	}
	return c
}
