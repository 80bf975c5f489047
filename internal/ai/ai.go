// Package ai defines the model-backed steps of an evaluation. Implementations
// return raw model text; parsing belongs to the consuming package.
package ai

import "context"

// Extractor turns an interview transcript into a candidate JSON payload.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (string, error)
}

// Scorer grades an interview transcript and returns a score record.
type Scorer interface {
	Score(ctx context.Context, transcript string) (string, error)
}
