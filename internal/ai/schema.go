package ai

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// resultDocument mirrors models.AnalysisResult with pointer fields so that a
// missing or null field can be told apart from an empty one.
type resultDocument struct {
	PossibleCondition *string   `json:"possibleCondition" validate:"required"`
	Severity          *string   `json:"severity" validate:"required,oneof=mild moderate severe"`
	SelfCareTips      *string   `json:"selfCareTips" validate:"required"`
	RecommendedDoctor *string   `json:"recommendedDoctor" validate:"required"`
	SymptomsExtracted []*string `json:"symptomsExtracted" validate:"required,dive,required"`
	FeelingSummary    *string   `json:"feelingSummary" validate:"required"`
	AdditionalNotes   *string   `json:"additionalNotes" validate:"required"`
	NextSteps         []*string `json:"nextSteps" validate:"required,dive,required"`
}

// ParseResult decodes raw model output and checks it against the
// AnalysisResult schema. Every field must be present under its exact key with
// the right type; severity must be exactly one of mild, moderate or severe.
// Unknown fields, including differently cased spellings of known keys, are
// ignored.
func ParseResult(raw []byte) (*models.AnalysisResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}

	var doc resultDocument
	for key, dst := range doc.targets() {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return nil, fmt.Errorf("decoding result field %q: %w", key, err)
		}
	}
	return doc.toResult()
}

// targets maps each exact JSON key to the field it fills. encoding/json folds
// case when matching struct tags, so keys are looked up by hand.
func (d *resultDocument) targets() map[string]any {
	return map[string]any{
		"possibleCondition": &d.PossibleCondition,
		"severity":          &d.Severity,
		"selfCareTips":      &d.SelfCareTips,
		"recommendedDoctor": &d.RecommendedDoctor,
		"symptomsExtracted": &d.SymptomsExtracted,
		"feelingSummary":    &d.FeelingSummary,
		"additionalNotes":   &d.AdditionalNotes,
		"nextSteps":         &d.NextSteps,
	}
}

func (d *resultDocument) toResult() (*models.AnalysisResult, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("validating result: %w", err)
	}
	return &models.AnalysisResult{
		PossibleCondition: *d.PossibleCondition,
		Severity:          models.Severity(*d.Severity),
		SelfCareTips:      *d.SelfCareTips,
		RecommendedDoctor: *d.RecommendedDoctor,
		SymptomsExtracted: derefAll(d.SymptomsExtracted),
		FeelingSummary:    *d.FeelingSummary,
		AdditionalNotes:   *d.AdditionalNotes,
		NextSteps:         derefAll(d.NextSteps),
	}, nil
}

func derefAll(in []*string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = *s
	}
	return out
}
