package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
	"github.com/tmarienko/ai-health-assistant/internal/infrastructure/observability"
	apperrors "github.com/tmarienko/ai-health-assistant/pkg/errors"
)

const medicalDisclaimer = "IMPORTANT MEDICAL DISCLAIMER: This information is for educational purposes only and is not a substitute " +
	"for professional medical advice, diagnosis, or treatment. Always seek the advice of your physician or " +
	"other qualified health provider with any questions you may have regarding a medical condition. " +
	"Never disregard professional medical advice or delay in seeking it because of information provided here. " +
	"If you experience any red flag symptoms listed above, seek immediate medical attention."

// AnalysisService runs one full symptom evaluation: category resolution,
// personalization, cause analysis, risk assessment, insights, and the
// final report assembly. Evaluations are stateless reads of the immutable
// knowledge base, so arbitrarily many may run concurrently without locks.
type AnalysisService struct {
	kb              *KnowledgeBase
	personalization *PersonalizationService
	causeAnalysis   *CauseAnalysisService
	riskAssessment  *RiskAssessmentService
	insights        *InsightService
	metrics         *observability.Metrics
	now             func() time.Time
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(kb *KnowledgeBase) *AnalysisService {
	return &AnalysisService{
		kb:              kb,
		personalization: NewPersonalizationService(),
		causeAnalysis:   NewCauseAnalysisService(),
		riskAssessment:  NewRiskAssessmentService(),
		insights:        NewInsightService(),
		now:             time.Now,
	}
}

// SetMetrics sets the metrics used to count completed analyses.
func (s *AnalysisService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// SetClock replaces the wall-clock source. The clock read is the only
// side effect in the pipeline; with a frozen clock the whole evaluation is
// deterministic.
func (s *AnalysisService) SetClock(now func() time.Time) {
	s.now = now
}

// Evaluate produces the complete advisory report for one query. Any panic
// during evaluation is converted to a single opaque internal error; a
// partial report is never returned.
func (s *AnalysisService) Evaluate(ctx context.Context, query *entities.SymptomQuery) (report *entities.HealthReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = apperrors.NewInternalError("symptom analysis failed", fmt.Errorf("%v", r))
		}
	}()

	if err := query.Validate(); err != nil {
		return nil, err
	}

	category := s.kb.Resolve(query.Symptom)
	entry := s.kb.Entry(category)

	logger := observability.LoggerFromContext(ctx)
	logger.Info().
		Str("category", string(category)).
		Str("symptom", query.Symptom).
		Msg("analyzing symptom")

	report = &entities.HealthReport{
		SymptomAnalysis:      s.analysisNarrative(query, category),
		AIWebResearch:        s.researchNarrative(query, category),
		DietPlan:             s.personalization.Personalize(entry.Diet, query),
		PossibleCauses:       s.causeAnalysis.Causes(category, query),
		LifestyleSuggestions: s.kb.Lifestyle(category),
		RedFlags:             append([]string(nil), entry.RedFlags...),
		AIInsights:           s.insights.Insights(query),
		RiskAssessment:       s.riskAssessment.Assess(query.Severity, query.Duration),
		PersonalizedTips:     s.personalizedTips(entry, query),
		MedicalDisclaimer:    medicalDisclaimer,
		SearchTimestamp:      s.now().UTC().Format(time.RFC3339),
	}

	if s.metrics != nil {
		observability.RecordAnalysis(ctx, s.metrics, string(category))
	}

	return report, nil
}

// personalizedTips composes the tip list in fixed order: category base
// tips, then the age, gender, and history additions when they apply.
func (s *AnalysisService) personalizedTips(entry *entities.KnowledgeEntry, query *entities.SymptomQuery) []string {
	tips := append([]string(nil), entry.BaseTips...)

	if query.AgeOver(50) {
		tips = append(tips, "Bone density and vitamin D status become more important after 50; ask your provider about screening.")
	}
	if query.IsFemale() {
		tips = append(tips, "Consider having iron and ferritin levels checked, particularly alongside fatigue or heavy periods.")
	}
	if query.MedicalHistory != "" {
		tips = append(tips, "Review any new supplements or dietary changes against your existing conditions and medications with your clinician.")
	}

	return tips
}

func (s *AnalysisService) analysisNarrative(query *entities.SymptomQuery, category entities.Category) string {
	return fmt.Sprintf(
		"Your symptom of '%s' was evaluated against the %s guidance profile, considering duration (%s) and severity (%s). "+
			"The dietary plan, possible causes, and lifestyle recommendations below are tailored to this presentation and the details you provided.",
		query.Symptom,
		category,
		orNotSpecified(query.Duration),
		orNotSpecified(query.Severity),
	)
}

// researchNarrative is templated constant text. No live search or model is
// queried anywhere in the engine.
func (s *AnalysisService) researchNarrative(query *entities.SymptomQuery, category entities.Category) string {
	return fmt.Sprintf(
		"Curated reference material for '%s' covering dietary treatment, evidence-based causes, and lifestyle management "+
			"was drawn from the assistant's reviewed %s knowledge tables. Recommendations reflect established guidance, not live sources.",
		query.Symptom,
		category,
	)
}

func orNotSpecified(value string) string {
	if value == "" {
		return "not specified"
	}
	return value
}
