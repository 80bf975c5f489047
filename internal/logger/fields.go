package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/taxonomy"
)

const (
	FieldApp     = "app"
	FieldVersion = "version"

	// FieldProvider and FieldModel describe the language model behind a call.
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
	// FieldTask names the model task (extract or score).
	FieldTask = "ai_task"

	// FieldEvaluation identifies one evaluation run.
	FieldEvaluation = "evaluation_id"
	FieldCandidate  = "candidate"
	FieldTitle      = "title"
)

// StringField is a string-valued log field that is dropped when empty.
type StringField struct {
	Key   string
	Value string
}

// StringFields trims the pairs and skips those with an empty key or value.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ModelFields describe a model call. Empty values are left out.
func ModelFields(provider, model, task string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
		StringField{Key: FieldTask, Value: task},
	)
}

// WithModel attaches the provider and model to logger.
func WithModel(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, ModelFields(provider, model, "")...)
}

// CandidateFields describe the evaluation an entry belongs to. Unknown names
// and titles are dropped.
func CandidateFields(evaluationID, name, title string) []zap.Field {
	fields := []StringField{{Key: FieldEvaluation, Value: evaluationID}}
	if !taxonomy.IsUnknown(name) {
		fields = append(fields, StringField{Key: FieldCandidate, Value: name})
	}
	if !taxonomy.IsUnknown(title) {
		fields = append(fields, StringField{Key: FieldTitle, Value: title})
	}

	return StringFields(fields...)
}
