package entities

// PossibleCause is one candidate explanation for a symptom. Causes are held
// in ordered lists per category where position encodes rank: index 0 is the
// most likely condition.
type PossibleCause struct {
	Condition    string `json:"condition"`
	Probability  string `json:"probability"`
	Description  string `json:"description"`
	UrgencyLevel string `json:"urgency_level"`
	AIConfidence string `json:"ai_confidence"`
}
