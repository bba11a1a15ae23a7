package recommendpackage

// Input is read from the process variables.
type Input struct {
	OrgType        string `json:"orgType"`
	TeamSize       string `json:"teamSize"`
	ClientVolume   string `json:"clientVolume"`
	ServiceModel   string `json:"serviceModel,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// Output is merged into the process variables on completion.
type Output struct {
	RecommendedPackage string `json:"recommendedPackage"`
	RecommendedSeats   int    `json:"recommendedSeats"`
	EstimatedPricing   string `json:"estimatedPricing"`
	KeyFeatures        string `json:"keyFeatures"`
	NextSteps          string `json:"nextSteps"`
	SalesMessage       string `json:"salesMessage"`
	MatchedRule        string `json:"matchedRule"`
}
