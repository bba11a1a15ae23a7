package recommendpackage

import (
	apperrors "cogni-recommender/internal/common/errors"
	"cogni-recommender/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
)

func nonEmpty() *int { n := 1; return &n }

var inputSchema = validation.MustCompile(TaskType+".input", validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"orgType":        {Type: "string", MinLength: nonEmpty()},
		"teamSize":       {Type: "string", MinLength: nonEmpty()},
		"clientVolume":   {Type: "string"},
		"serviceModel":   {Type: "string"},
		"specialization": {Type: "string"},
	},
	Required: []string{"orgType", "teamSize", "clientVolume"},
})

// inputFromJob decodes the job variables and validates them.
func inputFromJob(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, apperrors.NewRequestValidationFailedError("job variables are not a JSON object: " + err.Error())
	}
	return parseInput(variables)
}

// parseInput validates the decoded job variables and copies out the
// fields the recommendation uses. Other process variables are ignored.
func parseInput(variables map[string]interface{}) (*Input, error) {
	if err := inputSchema.ValidateInput(variables).Err(); err != nil {
		return nil, err
	}

	return &Input{
		OrgType:        stringVar(variables, "orgType"),
		TeamSize:       stringVar(variables, "teamSize"),
		ClientVolume:   stringVar(variables, "clientVolume"),
		ServiceModel:   stringVar(variables, "serviceModel"),
		Specialization: stringVar(variables, "specialization"),
	}, nil
}

func stringVar(variables map[string]interface{}, key string) string {
	s, _ := variables[key].(string)
	return s
}
