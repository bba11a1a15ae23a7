package recommendation

import (
	"fmt"
	"slices"
	"strings"

	"cogni-recommender/internal/catalog"
	apperrors "cogni-recommender/internal/common/errors"
)

// Rule tags, reported with every classification.
const (
	RuleTraumaSpecialization = "trauma-specialization"
	RuleVeryHighVolume       = "very-high-volume"
	RuleGroupServiceModel    = "group-service-model"
	RuleOrgType              = "org-type"
)

// Answers are the raw questionnaire fields the classifier reads.
type Answers struct {
	OrgType        string
	TeamSize       string
	ClientVolume   string
	Specialization string
	ServiceModel   string
}

// Selection is a package and seat count.
type Selection struct {
	Package string
	Seats   int
}

// Classification is the outcome of Classify.
type Classification struct {
	Selection
	Rule       string
	Normalized NormalizedAnswers
}

type classifierInput struct {
	NormalizedAnswers
	specialization string
	serviceModel   string
}

type rule struct {
	tag   string
	match func(in classifierInput) (Selection, bool)
}

// rules are evaluated in order and the first match wins.
var rules = []rule{
	{
		tag: RuleTraumaSpecialization,
		match: func(in classifierInput) (Selection, bool) {
			return Selection{catalog.PracticePlus, 8}, strings.Contains(in.specialization, "trauma")
		},
	},
	{
		tag: RuleVeryHighVolume,
		match: func(in classifierInput) (Selection, bool) {
			return Selection{catalog.EnterpriseCare, 20}, in.ClientVolume == VolumeVeryHigh
		},
	},
	{
		tag: RuleGroupServiceModel,
		match: func(in classifierInput) (Selection, bool) {
			large := in.TeamSize == TeamLarge || in.TeamSize == TeamXL
			return Selection{catalog.CommunityAccess, 20}, large && strings.Contains(in.serviceModel, "group")
		},
	},
	{
		tag:   RuleOrgType,
		match: byOrgType,
	},
}

func byOrgType(in classifierInput) (Selection, bool) {
	switch in.OrgType {
	case OrgPublicHealth:
		if slices.Contains([]string{TeamSolo, TeamSmall, TeamMedium}, in.TeamSize) {
			return Selection{catalog.PracticePlus, 6}, true
		}
		return Selection{catalog.EnterpriseCare, 20}, true
	case OrgInsuranceEAS:
		return Selection{catalog.EnterpriseAccess, 20}, true
	default:
		// Private Practice, Home Care/Group Home and anything unrecognized.
		switch in.TeamSize {
		case TeamSolo, TeamSmall:
			return Selection{catalog.FreshStart, 4}, true
		case TeamMedium:
			return Selection{catalog.PracticePlus, 8}, true
		case TeamLarge:
			return Selection{catalog.CommunityAccess, 16}, true
		default:
			return Selection{catalog.CommunityAccess, 20}, true
		}
	}
}

// Classify normalizes a and selects a package and seat count. It fails with
// INVALID_INPUT when the organization type or team size is empty.
func Classify(a Answers) (*Classification, error) {
	normalized := Normalize(a.OrgType, a.TeamSize, a.ClientVolume)

	var missing []string
	if normalized.OrgType == "" {
		missing = append(missing, "org_type")
	}
	if normalized.TeamSize == "" {
		missing = append(missing, "team_size")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("missing required answers: %s", strings.Join(missing, ", "))).
			WithMetadata("fields", missing)
	}

	in := classifierInput{
		NormalizedAnswers: normalized,
		specialization:    strings.ToLower(a.Specialization),
		serviceModel:      strings.ToLower(a.ServiceModel),
	}

	for _, r := range rules {
		if sel, ok := r.match(in); ok {
			return &Classification{Selection: sel, Rule: r.tag, Normalized: normalized}, nil
		}
	}

	// byOrgType always matches.
	return nil, apperrors.NewInternalError(fmt.Errorf("no classification rule matched %+v", normalized))
}
