package services

import (
	"fmt"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
)

// ageInsightThreshold gates the age-related insight.
const ageInsightThreshold = 40

// InsightService emits the advisory insights for an analysis. The order is
// fixed: pattern analysis, then the age insight when it applies, then
// prevention. The age insight is omitted, never reordered, so cardinality
// is always 2 or 3.
type InsightService struct{}

// NewInsightService creates a new insight service.
func NewInsightService() *InsightService {
	return &InsightService{}
}

// Insights builds the insight list for a query.
func (s *InsightService) Insights(query *entities.SymptomQuery) []entities.Insight {
	insights := []entities.Insight{
		{
			InsightType: "pattern_analysis",
			Title:       "Symptom Pattern Analysis",
			Description: fmt.Sprintf(
				"Your reported symptom of '%s' was compared against common presentation patterns to rank the possible causes listed in this report.",
				query.Symptom),
			Recommendation: "Track frequency, timing, and triggers to refine the picture over time.",
			EvidenceLevel:  "Moderate",
		},
	}

	if query.AgeOver(ageInsightThreshold) {
		insights = append(insights, entities.Insight{
			InsightType:    "age_related",
			Title:          "Age-Related Considerations",
			Description:    "Several conditions become more relevant with age, and routine screening recommendations change after 40.",
			Recommendation: "Discuss age-appropriate screening with your healthcare provider at your next visit.",
			EvidenceLevel:  "High",
		})
	}

	insights = append(insights, entities.Insight{
		InsightType:    "prevention",
		Title:          "Prevention Strategies",
		Description:    "Consistent sleep, hydration, balanced meals, and stress management reduce the recurrence of most common symptoms.",
		Recommendation: "Adopt the lifestyle suggestions in this report as ongoing habits rather than one-off fixes.",
		EvidenceLevel:  "High",
	})

	return insights
}
