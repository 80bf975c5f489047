package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/profile"
)

// Candidate is the input of one evaluation. Transcript feeds the model steps;
// Extraction, when set, is used instead of calling the extractor and Scores
// instead of calling the scorer.
type Candidate struct {
	Profile        profile.CandidateProfile `json:"profile"`
	Transcript     string                   `json:"transcript,omitempty"`
	TranscriptFile string                   `json:"transcript_file,omitempty"`
	Extraction     string                   `json:"extraction,omitempty"`
	Scores         *compensation.ScoreSet   `json:"scores,omitempty"`
}

// LoadCandidate reads a candidate JSON file. A relative transcript_file is
// resolved against the directory of path.
func LoadCandidate(path string) (Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("reading candidate file %q: %w", path, err)
	}

	c := Candidate{Profile: profile.Unknown()}
	if err := json.Unmarshal(data, &c); err != nil {
		return Candidate{}, fmt.Errorf("decoding candidate file %q: %w", path, err)
	}

	if c.Scores != nil {
		if err := c.Scores.Validate(); err != nil {
			return Candidate{}, fmt.Errorf("candidate file %q: %w", path, err)
		}
	}

	file := strings.TrimSpace(c.TranscriptFile)
	if file == "" || strings.TrimSpace(c.Transcript) != "" {
		return c, nil
	}

	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(path), file)
	}

	transcript, err := os.ReadFile(file)
	if err != nil {
		return Candidate{}, fmt.Errorf("reading transcript for %q: %w", path, err)
	}
	c.Transcript = string(transcript)

	return c, nil
}
