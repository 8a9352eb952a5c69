package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestSymptomQueryValidate(t *testing.T) {
	assert.Error(t, (&SymptomQuery{Symptom: ""}).Validate())
	assert.Error(t, (&SymptomQuery{Symptom: "  \t "}).Validate())
	assert.Error(t, (&SymptomQuery{Symptom: "headache", Age: intPtr(-1)}).Validate())
	assert.NoError(t, (&SymptomQuery{Symptom: "headache"}).Validate())
	assert.NoError(t, (&SymptomQuery{Symptom: "headache", Age: intPtr(34)}).Validate())
}

func TestSymptomQueryContextHelpers(t *testing.T) {
	q := &SymptomQuery{Symptom: "headache", Age: intPtr(45), Gender: " FEMALE "}

	assert.True(t, q.AgeOver(40))
	assert.False(t, q.AgeOver(45))
	assert.True(t, q.AgeUnder(50))
	assert.True(t, q.IsFemale())

	noAge := &SymptomQuery{Symptom: "headache"}
	assert.False(t, noAge.AgeOver(40))
	assert.False(t, noAge.AgeUnder(40))
	assert.False(t, noAge.IsFemale())
}

func TestDietPlanClone(t *testing.T) {
	plan := &DietPlan{
		FoodsToConsume:   []string{"a"},
		FoodsToAvoid:     []string{"b"},
		NutritionalFocus: []string{"c"},
		MealSuggestions:  []string{"d"},
		Supplements:      []string{"e"},
	}

	clone := plan.Clone()
	clone.FoodsToConsume = append(clone.FoodsToConsume, "extra")
	clone.Supplements[0] = "changed"

	assert.Equal(t, []string{"a"}, plan.FoodsToConsume)
	assert.Equal(t, []string{"e"}, plan.Supplements)
}

func TestHealthReportJSONRoundTrip(t *testing.T) {
	report := &HealthReport{
		SymptomAnalysis: "analysis text",
		AIWebResearch:   "research text",
		DietPlan: &DietPlan{
			FoodsToConsume:   []string{"water"},
			FoodsToAvoid:     []string{"alcohol"},
			NutritionalFocus: []string{"hydration"},
			MealSuggestions:  []string{"soup"},
			Supplements:      []string{"magnesium"},
		},
		PossibleCauses: []PossibleCause{
			{Condition: "Tension Headache", Probability: "High (40-50%)", Description: "stress-related", UrgencyLevel: "Low", AIConfidence: "High"},
		},
		LifestyleSuggestions: []string{"sleep well"},
		RedFlags:             []string{"sudden severe headache"},
		AIInsights: []Insight{
			{InsightType: "prevention", Title: "Prevention", Description: "d", Recommendation: "r", EvidenceLevel: "High"},
		},
		RiskAssessment: &RiskAssessment{
			ImmediateRisk:       RiskLow,
			ProgressionRisk:     RiskMedium,
			InterventionUrgency: UrgencyRoutine,
			FollowUpTimeline:    "1-2 weeks",
			AIRecommendation:    "monitor",
		},
		PersonalizedTips:  []string{"keep a diary"},
		MedicalDisclaimer: "educational purposes only",
		SearchTimestamp:   "2025-06-01T12:00:00Z",
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded HealthReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report, &decoded)
}
