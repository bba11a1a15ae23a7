package catalog

var builtin = []PackageDefinition{
	{
		Name:           FreshStart,
		IdealClient:    "Solo or small private practice",
		SeatRange:      "2-4 seats",
		PricingFormula: "$199/month base + $40/seat/month",
		Features: []string{
			"Basic self-guided tools",
			"AI self-assessment",
			"1 group session/month",
			"1 report template",
		},
	},
	{
		Name:           PracticePlus,
		IdealClient:    "Mental health clinics or private group practices (5-15 providers)",
		SeatRange:      "5-15 seats",
		PricingFormula: "$299/month base (includes 5 seats) + $35/additional seat",
		Features: []string{
			"Full AI suite",
			"Group modules",
			"2 sessions/month",
			"Custom reports",
			"Provider dashboard",
		},
	},
	{
		Name:           CommunityAccess,
		IdealClient:    "Group homes, home care services",
		SeatRange:      "10-30 staff, scalable by user volume",
		PricingFormula: "$299 base (includes 5 seats) + $7.99/user/month with volume discounts",
		Features: []string{
			"Multilingual AI tools",
			"Group support modules",
			"Onboarding support",
			"Usage dashboard",
			"Volume discounts for 500+ users",
		},
	},
	{
		Name:           EnterpriseCare,
		IdealClient:    "Public health institutions, rehabilitation centers, or clinics",
		SeatRange:      "10+ staff, unlimited users",
		PricingFormula: "Customized plan starting at $600+/month + fee-for-service contract",
		Features: []string{
			"Full AI triage",
			"Post-session care",
			"Real-time analytics",
			"API access",
			"Client monitoring & support",
			"Unlimited video, audio, and text-based monitoring tools",
		},
	},
	{
		Name:           EnterpriseAccess,
		IdealClient:    "Insurance providers and Employee Assistance Services",
		SeatRange:      "Unlimited or tiered by number of covered members",
		PricingFormula: "Customized plan starting at $600+/month + fee-for-service contract",
		Features: []string{
			"API integration",
			"Branded self-assessments",
			"Usage analytics",
			"Employer group modules",
			"Outcome dashboards",
			"Unlimited monitoring tools",
		},
	},
}

var defaultCatalog = mustNew(builtin)

func mustNew(defs []PackageDefinition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
