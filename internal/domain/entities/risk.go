package entities

// Risk vocabulary. The assessor only ever emits these values; anything
// outside the recognized severity/duration vocabulary leaves the baseline.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"

	UrgencyRoutine = "Routine"
	UrgencyPrompt  = "Prompt (within 48 hours)"
)

// RiskAssessment is a fixed-vocabulary classification derived from the
// severity and duration text of a query.
type RiskAssessment struct {
	ImmediateRisk       string `json:"immediate_risk"`
	ProgressionRisk     string `json:"progression_risk"`
	InterventionUrgency string `json:"intervention_urgency"`
	FollowUpTimeline    string `json:"follow_up_timeline"`
	AIRecommendation    string `json:"ai_recommendation"`
}
