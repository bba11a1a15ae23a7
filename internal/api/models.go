package api

import (
	"cogni-recommender/internal/catalog"
	"cogni-recommender/internal/recommendation"
)

// RecommendationRequest is the questionnaire as posted by the chat client.
// Timeline and Features are accepted but do not affect the result.
type RecommendationRequest struct {
	OrgType        string      `json:"org_type"`
	TeamSize       string      `json:"team_size"`
	ClientVolume   string      `json:"client_volume"`
	ServiceModel   string      `json:"service_model,omitempty"`
	Specialization string      `json:"specialization,omitempty"`
	Timeline       string      `json:"timeline,omitempty"`
	Features       interface{} `json:"features,omitempty"`
}

func (r RecommendationRequest) answers() recommendation.Answers {
	return recommendation.Answers{
		OrgType:        r.OrgType,
		TeamSize:       r.TeamSize,
		ClientVolume:   r.ClientVolume,
		ServiceModel:   r.ServiceModel,
		Specialization: r.Specialization,
	}
}

type RecommendationResponse struct {
	RecommendedPackage string `json:"recommended_package"`
	RecommendedSeats   int    `json:"recommended_seats"`
	EstimatedPricing   string `json:"estimated_pricing"`
	KeyFeatures        string `json:"key_features"`
	NextSteps          string `json:"next_steps"`
	SalesMessage       string `json:"sales_message"`
}

func newRecommendationResponse(rec *recommendation.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		RecommendedPackage: rec.Package,
		RecommendedSeats:   rec.Seats,
		EstimatedPricing:   rec.EstimatedPricing,
		KeyFeatures:        rec.KeyFeatures,
		NextSteps:          rec.NextSteps,
		SalesMessage:       rec.SalesMessage,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PackagesResponse struct {
	Packages []catalog.PackageDefinition `json:"packages"`
}

type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
