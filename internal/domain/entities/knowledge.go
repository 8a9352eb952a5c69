package entities

// Category is a named symptom bucket with a complete recommendation entry.
type Category string

// CategoryDefault is the fallback bucket used when no declared category
// matches the symptom text.
const CategoryDefault Category = "default"

// DietPlan holds the dietary recommendation lists for one category.
type DietPlan struct {
	FoodsToConsume   []string `json:"foods_to_consume"`
	FoodsToAvoid     []string `json:"foods_to_avoid"`
	NutritionalFocus []string `json:"nutritional_focus"`
	MealSuggestions  []string `json:"meal_suggestions"`
	Supplements      []string `json:"supplements"`
}

// Clone returns a deep copy of the plan. Personalization always operates
// on a clone so the canonical knowledge table is never written to.
func (p *DietPlan) Clone() *DietPlan {
	if p == nil {
		return nil
	}
	return &DietPlan{
		FoodsToConsume:   append([]string(nil), p.FoodsToConsume...),
		FoodsToAvoid:     append([]string(nil), p.FoodsToAvoid...),
		NutritionalFocus: append([]string(nil), p.NutritionalFocus...),
		MealSuggestions:  append([]string(nil), p.MealSuggestions...),
		Supplements:      append([]string(nil), p.Supplements...),
	}
}

// KnowledgeEntry is the canonical recommendation data for one category.
type KnowledgeEntry struct {
	Category  Category  `json:"category"`
	Diet      *DietPlan `json:"diet"`
	Lifestyle []string  `json:"lifestyle"`
	RedFlags  []string  `json:"red_flags"`
	BaseTips  []string  `json:"base_tips"`
}
