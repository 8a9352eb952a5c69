package entities

import (
	"strings"

	apperrors "github.com/tmarienko/ai-health-assistant/pkg/errors"
)

// SymptomQuery is one symptom analysis request. It is owned by a single
// evaluation and never shared between requests.
type SymptomQuery struct {
	Symptom        string `json:"symptom"`
	Duration       string `json:"duration"`
	Severity       string `json:"severity"`
	AdditionalInfo string `json:"additional_info"`
	Age            *int   `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

// Validate checks the query for malformed input. An empty symptom is
// rejected here instead of silently falling through to the default
// recommendations.
func (q *SymptomQuery) Validate() error {
	if strings.TrimSpace(q.Symptom) == "" {
		return apperrors.NewValidationError("symptom is required")
	}
	if q.Age != nil && *q.Age <= 0 {
		return apperrors.NewValidationError("age must be a positive integer")
	}
	return nil
}

// AgeOver reports whether an age was provided and exceeds the threshold.
func (q *SymptomQuery) AgeOver(threshold int) bool {
	return q.Age != nil && *q.Age > threshold
}

// AgeUnder reports whether an age was provided and is below the threshold.
func (q *SymptomQuery) AgeUnder(threshold int) bool {
	return q.Age != nil && *q.Age < threshold
}

// IsFemale reports whether the query's gender matches "female",
// case-insensitively.
func (q *SymptomQuery) IsFemale() bool {
	return strings.EqualFold(strings.TrimSpace(q.Gender), "female")
}
