package entities

// HealthReport is the complete structured output of one evaluation. It is
// freshly constructed per request and discarded after serialization.
type HealthReport struct {
	SymptomAnalysis      string          `json:"symptom_analysis"`
	AIWebResearch        string          `json:"ai_web_research"`
	DietPlan             *DietPlan       `json:"diet_plan"`
	PossibleCauses       []PossibleCause `json:"possible_causes"`
	LifestyleSuggestions []string        `json:"lifestyle_suggestions"`
	RedFlags             []string        `json:"red_flags"`
	AIInsights           []Insight       `json:"ai_insights"`
	RiskAssessment       *RiskAssessment `json:"risk_assessment"`
	PersonalizedTips     []string        `json:"personalized_tips"`
	MedicalDisclaimer    string          `json:"medical_disclaimer"`
	SearchTimestamp      string          `json:"search_timestamp"`
}
