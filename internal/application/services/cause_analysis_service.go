package services

import (
	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
)

// hypertensionAgeThreshold splits the hypertension cause into a two-branch
// lookup. Below the threshold the lower probability/confidence pair
// applies; at or above it (or with no age given) the higher one does.
const hypertensionAgeThreshold = 40

// CauseAnalysisService returns the ordered candidate causes for a
// category. Position encodes rank: index 0 is the most likely condition.
type CauseAnalysisService struct {
	causes map[entities.Category][]entities.PossibleCause
}

// NewCauseAnalysisService creates a new cause analysis service.
func NewCauseAnalysisService() *CauseAnalysisService {
	return &CauseAnalysisService{causes: builtinCauses()}
}

// Causes returns a fresh ordered cause list for the category, falling back
// to the default list for unknown categories.
func (s *CauseAnalysisService) Causes(category entities.Category, query *entities.SymptomQuery) []entities.PossibleCause {
	base, ok := s.causes[category]
	if !ok {
		base = s.causes[entities.CategoryDefault]
	}

	out := append([]entities.PossibleCause(nil), base...)

	if category == "headache" {
		for i := range out {
			if out[i].Condition != "High Blood Pressure" {
				continue
			}
			if query.AgeUnder(hypertensionAgeThreshold) {
				out[i].Probability = "Low (5-10%)"
				out[i].AIConfidence = "Low-Moderate"
			} else {
				out[i].Probability = "Medium (10-20%)"
				out[i].AIConfidence = "Moderate"
			}
		}
	}

	return out
}

func builtinCauses() map[entities.Category][]entities.PossibleCause {
	return map[entities.Category][]entities.PossibleCause{
		"headache": {
			{Condition: "Tension Headache", Probability: "High (40-50%)", Description: "Most common type, often stress-related", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Dehydration", Probability: "High (30-40%)", Description: "Insufficient fluid intake", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Migraine", Probability: "Medium (20-30%)", Description: "Neurological condition with specific triggers", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "Sinus Infection", Probability: "Medium (15-25%)", Description: "Inflammation of sinus cavities", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "High Blood Pressure", Probability: "Medium (10-20%)", Description: "Hypertension-related headaches", UrgencyLevel: "High", AIConfidence: "Moderate"},
		},
		"nausea": {
			{Condition: "Gastroenteritis", Probability: "High (30-40%)", Description: "Stomach flu or food poisoning", UrgencyLevel: "Medium", AIConfidence: "High"},
			{Condition: "Motion Sickness", Probability: "Medium (20-30%)", Description: "Travel or movement-related nausea", UrgencyLevel: "Low", AIConfidence: "Moderate"},
			{Condition: "Medication Side Effect", Probability: "Medium (15-25%)", Description: "Adverse reaction to medications", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "Pregnancy", Probability: "Medium (varies)", Description: "Morning sickness in early pregnancy", UrgencyLevel: "Low", AIConfidence: "Moderate"},
			{Condition: "Gastroparesis", Probability: "Low (5-10%)", Description: "Delayed stomach emptying", UrgencyLevel: "High", AIConfidence: "Low"},
		},
		"fatigue": {
			{Condition: "Sleep Deprivation", Probability: "High (40-50%)", Description: "Insufficient or poor quality sleep", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Iron Deficiency Anemia", Probability: "Medium (20-30%)", Description: "Low iron levels affecting oxygen transport", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "Thyroid Dysfunction", Probability: "Medium (15-25%)", Description: "Underactive thyroid gland", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "Chronic Fatigue Syndrome", Probability: "Low (10-15%)", Description: "Complex disorder with persistent fatigue", UrgencyLevel: "Medium", AIConfidence: "Low"},
			{Condition: "Depression", Probability: "Medium (20-25%)", Description: "Mental health condition affecting energy", UrgencyLevel: "High", AIConfidence: "Moderate"},
		},
		"anxiety": {
			{Condition: "Generalized Anxiety", Probability: "High (30-40%)", Description: "Persistent excessive worry across situations", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Situational Stress", Probability: "High (30-40%)", Description: "Response to identifiable life stressors", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Caffeine Sensitivity", Probability: "Medium (15-25%)", Description: "Stimulant-induced restlessness and jitteriness", UrgencyLevel: "Low", AIConfidence: "Moderate"},
			{Condition: "Thyroid Dysfunction", Probability: "Low (5-10%)", Description: "Overactive thyroid mimicking anxiety", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
			{Condition: "Panic Disorder", Probability: "Low (5-10%)", Description: "Recurrent unexpected panic attacks", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
		},
		"insomnia": {
			{Condition: "Poor Sleep Hygiene", Probability: "High (40-50%)", Description: "Irregular schedule, screens, late caffeine", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Stress and Anxiety", Probability: "High (30-40%)", Description: "Racing thoughts preventing sleep onset", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Circadian Rhythm Disruption", Probability: "Medium (15-25%)", Description: "Shift work or travel shifting the body clock", UrgencyLevel: "Low", AIConfidence: "Moderate"},
			{Condition: "Sleep Apnea", Probability: "Low (10-15%)", Description: "Breathing interruptions fragmenting sleep", UrgencyLevel: "High", AIConfidence: "Moderate"},
			{Condition: "Restless Legs Syndrome", Probability: "Low (5-10%)", Description: "Uncomfortable urge to move the legs at night", UrgencyLevel: "Medium", AIConfidence: "Low"},
		},
		entities.CategoryDefault: {
			{Condition: "Lifestyle Factors", Probability: "High", Description: "Diet, sleep, or stress-related", UrgencyLevel: "Low", AIConfidence: "High"},
			{Condition: "Viral Infection", Probability: "Medium", Description: "Common viral illness", UrgencyLevel: "Low", AIConfidence: "Moderate"},
			{Condition: "Medication Effects", Probability: "Medium", Description: "Side effects from medications", UrgencyLevel: "Medium", AIConfidence: "Moderate"},
		},
	}
}
