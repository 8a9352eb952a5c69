package entities

// Insight is one templated advisory insight attached to an analysis.
type Insight struct {
	InsightType    string `json:"insight_type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	EvidenceLevel  string `json:"evidence_level"`
}
