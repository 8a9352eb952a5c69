package services

import (
	"strings"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
)

const (
	baselineFollowUp  = "1-2 weeks"
	elevatedFollowUp  = "3-5 days"
	baselineRiskText  = "Monitor symptoms and maintain the recommended dietary and lifestyle changes. Seek care if symptoms persist or worsen."
	escalatedRiskText = "Symptoms of this duration warrant evaluation by a healthcare professional. Schedule an appointment rather than continuing self-care alone."
)

// RiskAssessmentService maps severity and duration text to a
// fixed-vocabulary risk classification. This is a closed rule set:
// values outside the recognized vocabulary leave the baseline untouched.
type RiskAssessmentService struct{}

// NewRiskAssessmentService creates a new risk assessment service.
func NewRiskAssessmentService() *RiskAssessmentService {
	return &RiskAssessmentService{}
}

// Assess classifies risk from the severity and duration text. The two
// overrides are independent and may both apply to the same query.
func (s *RiskAssessmentService) Assess(severity, duration string) *entities.RiskAssessment {
	assessment := &entities.RiskAssessment{
		ImmediateRisk:       entities.RiskLow,
		ProgressionRisk:     entities.RiskLow,
		InterventionUrgency: entities.UrgencyRoutine,
		FollowUpTimeline:    baselineFollowUp,
		AIRecommendation:    baselineRiskText,
	}

	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "severe", "very severe":
		assessment.ImmediateRisk = entities.RiskMedium
		assessment.InterventionUrgency = entities.UrgencyPrompt
		assessment.FollowUpTimeline = elevatedFollowUp
	}

	loweredDuration := strings.ToLower(duration)
	if strings.Contains(loweredDuration, "weeks") || strings.Contains(loweredDuration, "month") {
		assessment.ProgressionRisk = entities.RiskMedium
		assessment.AIRecommendation = escalatedRiskText
	}

	return assessment
}
