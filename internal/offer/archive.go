package offer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spigell/offer-advisor/internal/evaluation"
)

const (
	eligibleDir   = "60plus"
	ineligibleDir = "below60"
)

// Saved lists the files written for one evaluation. Offer is empty for
// ineligible candidates.
type Saved struct {
	Result string
	Offer  string
}

// Save writes the evaluation result and, for eligible candidates, the offer
// under root/<60plus|below60>/<name>/. File names carry the evaluation id.
func (c *Composer) Save(root string, e *evaluation.Evaluation) (Saved, error) {
	if e == nil {
		return Saved{}, errors.New("evaluation is required")
	}

	bucket := ineligibleDir
	if e.Eligible {
		bucket = eligibleDir
	}

	dir := filepath.Join(root, bucket, safeName(DisplayName(e.Profile)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("creating output dir: %w", err)
	}

	result, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return Saved{}, fmt.Errorf("encoding evaluation: %w", err)
	}

	saved := Saved{Result: filepath.Join(dir, fmt.Sprintf("result-%s.json", e.ID))}
	if err := os.WriteFile(saved.Result, result, 0o644); err != nil {
		return Saved{}, fmt.Errorf("writing result: %w", err)
	}

	if !e.Eligible {
		return saved, nil
	}

	letter, err := c.Compose(e)
	if err != nil {
		return Saved{}, err
	}

	saved.Offer = filepath.Join(dir, fmt.Sprintf("offer-%s.md", e.ID))
	if err := os.WriteFile(saved.Offer, []byte(letter), 0o644); err != nil {
		return Saved{}, fmt.Errorf("writing offer: %w", err)
	}

	return saved, nil
}

// safeName keeps letters and digits and turns everything else into underscores.
func safeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, strings.TrimSpace(name))

	name = strings.Trim(name, "_")
	if name == "" {
		return fallbackName
	}
	return name
}
