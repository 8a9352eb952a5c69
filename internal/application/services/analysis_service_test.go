package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
	"github.com/tmarienko/ai-health-assistant/internal/infrastructure/observability"
	apperrors "github.com/tmarienko/ai-health-assistant/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestService(t *testing.T) *AnalysisService {
	t.Helper()
	kb, err := NewKnowledgeBase()
	require.NoError(t, err)
	svc := NewAnalysisService(kb)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	return svc
}

func TestEvaluate_EmptySymptomRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "   "})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestEvaluate_NonPositiveAgeRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "headache", Age: intPtr(0)})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestEvaluate_UnknownSymptomUsesDefaultData(t *testing.T) {
	svc := newTestService(t)
	kb := svc.kb

	report, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "itchy elbow"})
	require.NoError(t, err)

	defaultEntry := kb.Entry(entities.CategoryDefault)
	assert.Equal(t, defaultEntry.Diet, report.DietPlan)
	assert.Equal(t, defaultEntry.RedFlags, report.RedFlags)
	assert.Equal(t, kb.Lifestyle(entities.CategoryDefault), report.LifestyleSuggestions)
	assert.Equal(t, "Lifestyle Factors", report.PossibleCauses[0].Condition)
}

func TestEvaluate_SingleKeyMatchesCategory(t *testing.T) {
	svc := newTestService(t)
	kb := svc.kb

	report, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "waves of Nausea"})
	require.NoError(t, err)

	assert.Equal(t, kb.Entry("nausea").Diet, report.DietPlan)
	assert.Equal(t, "Gastroenteritis", report.PossibleCauses[0].Condition)
}

func TestEvaluate_OrderedTieBreak(t *testing.T) {
	svc := newTestService(t)
	kb := svc.kb

	report, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "headache with nausea"})
	require.NoError(t, err)

	// headache is declared first, so its entry wins
	assert.Equal(t, kb.Entry("headache").RedFlags, report.RedFlags)
	assert.Equal(t, "Tension Headache", report.PossibleCauses[0].Condition)
}

func TestEvaluate_NoCrossRequestTableMutation(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "itchy elbow"})
	require.NoError(t, err)

	// A personalized evaluation must not leak into the shared table
	_, err = svc.Evaluate(context.Background(), &entities.SymptomQuery{
		Symptom: "fatigue", Age: intPtr(60), Gender: "female",
	})
	require.NoError(t, err)

	second, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "itchy elbow"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_DeterministicWithFrozenClock(t *testing.T) {
	svc := newTestService(t)
	query := &entities.SymptomQuery{
		Symptom:  "pounding headache",
		Duration: "3 weeks",
		Severity: "severe",
		Age:      intPtr(55),
		Gender:   "female",
	}

	first, err := svc.Evaluate(context.Background(), query)
	require.NoError(t, err)
	second, err := svc.Evaluate(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-06-01T12:00:00Z", first.SearchTimestamp)
}

func TestEvaluate_PersonalizedTipsOrder(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{
		Symptom:        "insomnia",
		Age:            intPtr(62),
		Gender:         "female",
		MedicalHistory: "hypertension",
	})
	require.NoError(t, err)

	require.Len(t, report.PersonalizedTips, 5)
	assert.Equal(t, "Reserve the bed for sleep only", report.PersonalizedTips[0])
	assert.Contains(t, report.PersonalizedTips[2], "after 50")
	assert.Contains(t, report.PersonalizedTips[3], "iron")
	assert.Contains(t, report.PersonalizedTips[4], "clinician")
}

func TestEvaluate_NarrativesInterpolateRequestFields(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "dull headache"})
	require.NoError(t, err)

	assert.Contains(t, report.SymptomAnalysis, "dull headache")
	assert.Contains(t, report.SymptomAnalysis, "not specified")
	assert.Contains(t, report.AIWebResearch, "dull headache")
	assert.NotEmpty(t, report.MedicalDisclaimer)
}

func collectCounter(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var points []metricdata.DataPoint[int64]
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			points = append(points, sum.DataPoints...)
		}
	}
	return points
}

func TestEvaluate_CountsCompletedAnalyses(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	metrics, err := observability.InitMetrics()
	require.NoError(t, err)

	svc := newTestService(t)
	svc.SetMetrics(metrics)

	_, err = svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "headache"})
	require.NoError(t, err)

	// Rejected queries are not counted as analyses
	_, err = svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "   "})
	require.Error(t, err)

	points := collectCounter(t, reader, "analysis.count")
	require.Len(t, points, 1)
	assert.Equal(t, int64(1), points[0].Value)

	category, ok := points[0].Attributes.Value(attribute.Key("analysis.category"))
	require.True(t, ok)
	assert.Equal(t, "headache", category.AsString())
}

func TestEvaluate_ConcurrentEvaluationsStayIsolated(t *testing.T) {
	svc := newTestService(t)

	baseline, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "fatigue"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query := &entities.SymptomQuery{Symptom: "constant fatigue"}
			if i%2 == 0 {
				query.Age = intPtr(70)
				query.Gender = "female"
			}
			_, err := svc.Evaluate(context.Background(), query)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	after, err := svc.Evaluate(context.Background(), &entities.SymptomQuery{Symptom: "fatigue"})
	require.NoError(t, err)
	assert.Equal(t, baseline, after)
}
