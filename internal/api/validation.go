package api

import "cogni-recommender/internal/common/validation"

var recommendationRequestSchema = validation.MustCompile("getRecommendation", validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"org_type":       {Type: "string", Description: "Organization type as phrased in the questionnaire"},
		"team_size":      {Type: "string"},
		"client_volume":  {Type: "string"},
		"service_model":  {Type: "string"},
		"specialization": {Type: "string"},
		"timeline":       {Type: "string"},
		"features":       {},
	},
	Required: []string{"org_type", "team_size", "client_volume"},
})
