package profile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/offer-advisor/internal/utils"
)

// ErrNoJSONObject is returned when the extractor output holds no JSON object at all.
var ErrNoJSONObject = errors.New("no json object found in extraction output")

//go:embed schema/extraction.json
var extractionSchemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(extractionSchemaJSON))
})

// Extraction is a well-formed extractor payload. Nil scalars were sent as JSON null.
type Extraction struct {
	Name              *string   `mapstructure:"name"`
	Age               *string   `mapstructure:"age"`
	Education         *string   `mapstructure:"education"`
	ExperienceYears   *string   `mapstructure:"experience_years"`
	CurrentPosition   *string   `mapstructure:"current_position"`
	TargetPosition    *string   `mapstructure:"target_position"`
	TechnicalSkills   []string  `mapstructure:"technical_skills"`
	KeyProjects       []Project `mapstructure:"key_projects"`
	CareerGoals       *string   `mapstructure:"career_goals"`
	SalaryExpectation *string   `mapstructure:"salary_expectation"`
}

// ValidationError lists the schema violations of an extraction payload.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("extraction payload is invalid:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ParseExtraction pulls the JSON object out of raw extractor output, checks
// that every payload key is present and decodes it. Objects and arrays sent
// for scalar fields are flattened into strings.
func ParseExtraction(raw string) (*Extraction, error) {
	cleaned := utils.ExtractJSONObject(raw)
	if cleaned == "" {
		return nil, ErrNoJSONObject
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("decode extraction payload: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load extraction schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate extraction payload: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, e := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{Field: e.Field(), Message: e.Description()})
		}
		return nil, verr
	}

	var extraction Extraction
	if err := decode(scalarFields(doc), &extraction); err != nil {
		return nil, fmt.Errorf("decode extraction fields: %w", err)
	}

	// Skills and projects never replace the profile's own, so a shape that
	// cannot be decoded only leaves them empty.
	var lists Extraction
	if err := decode(listFields(doc), &lists); err == nil {
		extraction.TechnicalSkills = lists.TechnicalSkills
		extraction.KeyProjects = lists.KeyProjects
	}

	return &extraction, nil
}

var listKeys = map[string]bool{"technical_skills": true, "key_projects": true}

func scalarFields(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if !listKeys[k] {
			out[k] = v
		}
	}
	return out
}

func listFields(doc map[string]any) map[string]any {
	out := make(map[string]any, len(listKeys))
	for k := range listKeys {
		out[k] = doc[k]
	}
	return out
}

func decode(input map[string]any, out *Extraction) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			projectFromString,
			joinSliceToString,
			mapToString,
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

var projectType = reflect.TypeOf(Project{})

func projectFromString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != projectType {
		return data, nil
	}

	return Project{Name: strings.TrimSpace(data.(string))}, nil
}

func joinSliceToString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || to.Kind() != reflect.String {
		return data, nil
	}

	items, ok := data.([]any)
	if !ok {
		return data, nil
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
	}

	return strings.Join(parts, ", "), nil
}

// mapToString flattens an object such as {"min": 60000, "max": 70000} into
// "max: 70000, min: 60000" with keys sorted.
func mapToString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || to.Kind() != reflect.String {
		return data, nil
	}

	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if m[k] == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, m[k]))
	}

	return strings.Join(parts, ", "), nil
}
