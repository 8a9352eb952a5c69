package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
)

func intPtr(n int) *int {
	return &n
}

func basePlan() *entities.DietPlan {
	return &entities.DietPlan{
		FoodsToConsume:   []string{"Water (8-10 glasses daily)", "Ginger tea"},
		FoodsToAvoid:     []string{"Alcohol"},
		NutritionalFocus: []string{"Stay hydrated"},
		MealSuggestions:  []string{"Lunch: Quinoa salad"},
		Supplements:      []string{"Magnesium glycinate 400mg daily"},
	}
}

func TestPersonalize_AgeOver50(t *testing.T) {
	svc := NewPersonalizationService()
	query := &entities.SymptomQuery{Symptom: "headache", Age: intPtr(60)}

	out := svc.Personalize(basePlan(), query)

	assert.Contains(t, out.FoodsToConsume, calciumConsumeItem)
	assert.Contains(t, out.Supplements, vitaminDSupplement)
}

func TestPersonalize_CalciumSkippedWhenPresent(t *testing.T) {
	svc := NewPersonalizationService()
	plan := basePlan()
	plan.FoodsToConsume = append(plan.FoodsToConsume, "Calcium-fortified orange juice")
	query := &entities.SymptomQuery{Symptom: "headache", Age: intPtr(60)}

	out := svc.Personalize(plan, query)

	assert.NotContains(t, out.FoodsToConsume, calciumConsumeItem)
	// Vitamin D still applies
	assert.Contains(t, out.Supplements, vitaminDSupplement)
}

func TestPersonalize_FemaleIron(t *testing.T) {
	svc := NewPersonalizationService()
	query := &entities.SymptomQuery{Symptom: "headache", Gender: "Female"}

	out := svc.Personalize(basePlan(), query)

	assert.Contains(t, out.FoodsToConsume, ironConsumeItem)
}

func TestPersonalize_IronSkippedWhenPresent(t *testing.T) {
	svc := NewPersonalizationService()
	plan := basePlan()
	plan.FoodsToConsume = append(plan.FoodsToConsume, "Iron-rich foods (lean red meat, spinach)")
	query := &entities.SymptomQuery{Symptom: "fatigue", Gender: "female"}

	out := svc.Personalize(plan, query)

	assert.NotContains(t, out.FoodsToConsume, ironConsumeItem)
}

func TestPersonalize_RulesAreIndependent(t *testing.T) {
	svc := NewPersonalizationService()
	query := &entities.SymptomQuery{Symptom: "fatigue", Age: intPtr(65), Gender: "female"}

	out := svc.Personalize(basePlan(), query)

	assert.Contains(t, out.FoodsToConsume, calciumConsumeItem)
	assert.Contains(t, out.FoodsToConsume, ironConsumeItem)
	assert.Contains(t, out.Supplements, vitaminDSupplement)
}

func TestPersonalize_NeverMutatesOriginal(t *testing.T) {
	svc := NewPersonalizationService()
	plan := basePlan()
	consumeBefore := append([]string(nil), plan.FoodsToConsume...)
	supplementsBefore := append([]string(nil), plan.Supplements...)

	query := &entities.SymptomQuery{Symptom: "headache", Age: intPtr(70), Gender: "female"}
	out := svc.Personalize(plan, query)

	require.NotSame(t, plan, out)
	assert.Equal(t, consumeBefore, plan.FoodsToConsume)
	assert.Equal(t, supplementsBefore, plan.Supplements)
}

func TestPersonalize_NoContextNoChange(t *testing.T) {
	svc := NewPersonalizationService()
	plan := basePlan()

	out := svc.Personalize(plan, &entities.SymptomQuery{Symptom: "headache"})

	assert.Equal(t, plan, out)
}
