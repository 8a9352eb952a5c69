package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
	apperrors "github.com/tmarienko/ai-health-assistant/pkg/errors"
)

// categoryEntry pairs a category key with its knowledge entry. Matching
// order is the slice order, not map iteration order: the ordered tie-break
// is a contract, so the table is an explicit list of pairs.
type categoryEntry struct {
	key   entities.Category
	entry *entities.KnowledgeEntry
}

// KnowledgeBase is the process-wide, read-only recommendation table.
// It is built once at startup, validated, and never mutated afterwards;
// evaluations only ever read from it.
type KnowledgeBase struct {
	ordered          []categoryEntry
	defaultEntry     *entities.KnowledgeEntry
	generalLifestyle []string
}

// NewKnowledgeBase builds the knowledge base from the built-in tables.
func NewKnowledgeBase() (*KnowledgeBase, error) {
	return newKnowledgeBase(builtinKnowledge())
}

// NewKnowledgeBaseFromFile builds the knowledge base from a JSON file,
// replacing the built-in tables entirely. The file is validated the same
// way as the built-in data.
func NewKnowledgeBaseFromFile(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}
	var table knowledgeTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}
	return newKnowledgeBase(&table)
}

func newKnowledgeBase(table *knowledgeTable) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		generalLifestyle: append([]string(nil), table.GeneralLifestyle...),
	}

	for _, raw := range table.Categories {
		entry := raw.toEntry()
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		kb.ordered = append(kb.ordered, categoryEntry{key: entry.Category, entry: entry})
	}

	defaultEntry := table.Default.toEntry()
	defaultEntry.Category = entities.CategoryDefault
	if err := validateEntry(defaultEntry); err != nil {
		return nil, err
	}
	kb.defaultEntry = defaultEntry

	return kb, nil
}

// validateEntry rejects entries with missing diet lists. A gap here is a
// fatal configuration error at startup, never a request-time condition.
func validateEntry(entry *entities.KnowledgeEntry) error {
	if entry.Diet == nil {
		return apperrors.NewNotConfiguredError(
			fmt.Sprintf("category %q has no diet plan", entry.Category))
	}
	fields := map[string][]string{
		"foods_to_consume":  entry.Diet.FoodsToConsume,
		"foods_to_avoid":    entry.Diet.FoodsToAvoid,
		"nutritional_focus": entry.Diet.NutritionalFocus,
		"meal_suggestions":  entry.Diet.MealSuggestions,
		"supplements":       entry.Diet.Supplements,
	}
	for name, list := range fields {
		if len(list) == 0 {
			return apperrors.NewNotConfiguredError(
				fmt.Sprintf("category %q is missing %s", entry.Category, name))
		}
	}
	return nil
}

// Resolve maps free symptom text to a category by substring containment,
// testing keys in declared order and returning the first hit. No
// tokenization, no fuzzy scoring: "severe headache and nausea" resolves to
// headache because headache is declared first.
func (kb *KnowledgeBase) Resolve(symptomText string) entities.Category {
	lowered := strings.ToLower(symptomText)
	for _, ce := range kb.ordered {
		if strings.Contains(lowered, string(ce.key)) {
			return ce.key
		}
	}
	return entities.CategoryDefault
}

// Entry returns the canonical knowledge entry for a category, or the
// default entry when the category is unknown. Callers must not mutate the
// returned entry; personalization clones first.
func (kb *KnowledgeBase) Entry(category entities.Category) *entities.KnowledgeEntry {
	for _, ce := range kb.ordered {
		if ce.key == category {
			return ce.entry
		}
	}
	return kb.defaultEntry
}

// Lifestyle returns the lifestyle suggestions for a category: the general
// recommendations plus any category-specific additions.
func (kb *KnowledgeBase) Lifestyle(category entities.Category) []string {
	entry := kb.Entry(category)
	out := append([]string(nil), kb.generalLifestyle...)
	return append(out, entry.Lifestyle...)
}

// Categories returns the declared category keys in matching order.
func (kb *KnowledgeBase) Categories() []entities.Category {
	keys := make([]entities.Category, 0, len(kb.ordered))
	for _, ce := range kb.ordered {
		keys = append(keys, ce.key)
	}
	return keys
}

// knowledgeTable is the serializable form of the full recommendation
// table. Category order in the file is the matching order.
type knowledgeTable struct {
	Categories       []knowledgeRecord `json:"categories"`
	Default          knowledgeRecord   `json:"default"`
	GeneralLifestyle []string          `json:"general_lifestyle"`
}

type knowledgeRecord struct {
	Category  string            `json:"category"`
	Diet      entities.DietPlan `json:"diet"`
	Lifestyle []string          `json:"lifestyle"`
	RedFlags  []string          `json:"red_flags"`
	BaseTips  []string          `json:"base_tips"`
}

func (r knowledgeRecord) toEntry() *entities.KnowledgeEntry {
	diet := r.Diet
	return &entities.KnowledgeEntry{
		Category:  entities.Category(strings.ToLower(strings.TrimSpace(r.Category))),
		Diet:      &diet,
		Lifestyle: r.Lifestyle,
		RedFlags:  r.RedFlags,
		BaseTips:  r.BaseTips,
	}
}
