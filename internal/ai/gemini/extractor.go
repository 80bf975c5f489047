package gemini

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed extract_prompt.md
var extractPrompt string

//go:embed score_prompt.md
var scorePrompt string

const defaultMaxLogLength = 200

// Extractor asks Gemini for the candidate payload of a transcript.
type Extractor struct {
	task
}

// Scorer asks Gemini to grade a transcript.
type Scorer struct {
	task
}

func NewExtractor(generator contentGenerator, maxLogLength int, log *zap.Logger) *Extractor {
	return &Extractor{task: newTask("extract", extractPrompt, generator, maxLogLength, log)}
}

func NewScorer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Scorer {
	return &Scorer{task: newTask("score", scorePrompt, generator, maxLogLength, log)}
}

func (e *Extractor) Extract(ctx context.Context, transcript string) (string, error) {
	return e.run(ctx, transcript)
}

func (s *Scorer) Score(ctx context.Context, transcript string) (string, error) {
	return s.run(ctx, transcript)
}

type task struct {
	name      string
	system    string
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func newTask(name, system string, generator contentGenerator, maxLogLength int, log *zap.Logger) task {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return task{
		name:      name,
		system:    system,
		generator: generator,
		logger:    logger.WithFields(log, logger.ModelFields("", "", name)...),
		maxLogLen: maxLogLength,
	}
}

func (t task) run(ctx context.Context, transcript string) (string, error) {
	if t.generator == nil {
		return "", errors.New("gemini generator is not configured")
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", errors.New("transcript is empty")
	}

	t.logger.Debug("gemini generate content request",
		zap.Int("transcript_length", utf8.RuneCountInString(transcript)),
		zap.String("transcript_preview", logger.TruncateForLog(transcript, t.maxLogLen)),
	)

	raw, err := t.generator.GenerateContent(ctx, t.system, transcript)
	if err != nil {
		return "", err
	}

	t.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, t.maxLogLen)),
	)

	return raw, nil
}
