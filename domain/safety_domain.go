package domain

import (
	"Expronix-Backend/entities"
)

var (
	MessageSuccessCheckSafety = "safety check completed successfully"
	MessageFailedCheckSafety  = "failed to run safety check"
)

type (
	SafetyCheckRequest struct {
		Name        string   `json:"name" validate:"required"`
		Category    string   `json:"category"`
		Ingredients []string `json:"ingredients"`
	}

	HealthConcernResponse struct {
		Condition       string   `json:"condition"`
		MatchedKeywords []string `json:"matched_keywords"`
	}

	SafetyCheckResponse struct {
		AllergyMatches  []entities.Allergy      `json:"allergy_matches"`
		HighestSeverity string                  `json:"highest_severity,omitempty"`
		HealthConcerns  []HealthConcernResponse `json:"health_concerns"`
	}
)
