package services

import (
	"strings"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
)

const (
	calciumConsumeItem = "Calcium-rich foods (dairy, fortified plant milk, leafy greens)"
	vitaminDSupplement = "Vitamin D3 2000 IU daily (higher dose recommended over 50)"
	ironConsumeItem    = "Iron-rich foods (lean red meat, lentils, spinach)"
)

// PersonalizationService derives a customized diet plan from the query
// context. It always works on a deep copy: the canonical knowledge table
// must stay bit-for-bit stable across concurrent evaluations.
type PersonalizationService struct{}

// NewPersonalizationService creates a new personalization service.
func NewPersonalizationService() *PersonalizationService {
	return &PersonalizationService{}
}

// Personalize returns a new diet plan with context-driven additions.
// The rules are additive and independent; all of them are evaluated on
// every call.
func (s *PersonalizationService) Personalize(plan *entities.DietPlan, query *entities.SymptomQuery) *entities.DietPlan {
	out := plan.Clone()

	if query.AgeOver(50) {
		if !containsFold(out.FoodsToConsume, "calcium") {
			out.FoodsToConsume = append(out.FoodsToConsume, calciumConsumeItem)
		}
		out.Supplements = append(out.Supplements, vitaminDSupplement)
	}

	if query.IsFemale() {
		if !containsFold(out.FoodsToConsume, "iron") {
			out.FoodsToConsume = append(out.FoodsToConsume, ironConsumeItem)
		}
	}

	return out
}

func containsFold(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), substr) {
			return true
		}
	}
	return false
}
