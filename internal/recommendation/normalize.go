package recommendation

import "strings"

// Normalized organization types.
const (
	OrgPrivatePractice = "Private Practice"
	OrgPublicHealth    = "Public Health Provider"
	OrgInsuranceEAS    = "Insurance Provider/EAS"
	OrgHomeCare        = "Home Care/Group Home"
)

// Normalized team sizes. The ranges use an en dash.
const (
	TeamSolo   = "1"
	TeamSmall  = "2–5"
	TeamMedium = "6–15"
	TeamLarge  = "16–50"
	TeamXL     = "51+"
)

// Normalized client volumes.
const (
	VolumeLow      = "Low"
	VolumeMedium   = "Medium"
	VolumeHigh     = "High"
	VolumeVeryHigh = "Very High"
)

// Keys are questionnaire phrasing. No key may equal a normalized value from
// the same table, otherwise normalizing twice would change the answer.
var (
	orgTypeTable = map[string]string{
		"Mental Health Practitioner – Private Practice": OrgPrivatePractice,
		"Mental Health Practitioner - Private Practice": OrgPrivatePractice,
		"Private Practice / Solo Practitioner":          OrgPrivatePractice,
		"Public Health Institution / Clinic":            OrgPublicHealth,
		"Public Health Organization":                    OrgPublicHealth,
		"Rehabilitation Center":                         OrgPublicHealth,
		"Insurance Provider / EAS":                      OrgInsuranceEAS,
		"Employee Assistance Service (EAS)":             OrgInsuranceEAS,
		"Home Care / Group Home":                        OrgHomeCare,
		"Group Home / Home Care Service":                OrgHomeCare,
	}

	teamSizeTable = map[string]string{
		"1 (Solo practice)":      TeamSolo,
		"Solo practice":          TeamSolo,
		"2–5 providers":          TeamSmall,
		"2-5 providers":          TeamSmall,
		"2-5":                    TeamSmall,
		"6–15 providers":         TeamMedium,
		"6-15 providers":         TeamMedium,
		"6-15":                   TeamMedium,
		"16–50 providers":        TeamLarge,
		"16-50 providers":        TeamLarge,
		"16-50":                  TeamLarge,
		"51+ providers":          TeamXL,
		"More than 50 providers": TeamXL,
	}

	// "Over 1,000" is High: Very High overrides every organization type and
	// is kept for the largest bracket only.
	clientVolumeTable = map[string]string{
		"Less than 100": VolumeLow,
		"100–500":       VolumeMedium,
		"100-500":       VolumeMedium,
		"500–1,000":     VolumeHigh,
		"500-1,000":     VolumeHigh,
		"Over 1,000":    VolumeHigh,
		"Over 5,000":    VolumeVeryHigh,
		"5,000+":        VolumeVeryHigh,
	}
)

// NormalizedAnswers holds questionnaire answers mapped onto the fixed
// vocabulary. Unrecognized answers are carried through trimmed.
type NormalizedAnswers struct {
	OrgType      string `json:"org_type"`
	TeamSize     string `json:"team_size"`
	ClientVolume string `json:"client_volume"`
}

// Normalize maps raw answers onto the fixed vocabulary.
func Normalize(orgType, teamSize, clientVolume string) NormalizedAnswers {
	return NormalizedAnswers{
		OrgType:      lookup(orgTypeTable, orgType),
		TeamSize:     lookup(teamSizeTable, teamSize),
		ClientVolume: lookup(clientVolumeTable, clientVolume),
	}
}

func lookup(table map[string]string, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if mapped, ok := table[trimmed]; ok {
		return mapped
	}
	return trimmed
}
