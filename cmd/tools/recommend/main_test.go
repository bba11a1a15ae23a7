package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogni-recommender/internal/catalog"
	"cogni-recommender/internal/recommendation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"recommend-cli"}, args...))
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend",
		"--org-type", "Mental Health Practitioner – Private Practice",
		"--team-size", "2–5 providers",
		"--client-volume", "Less than 100",
	)
	require.NoError(t, err)

	var rec recommendation.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, catalog.FreshStart, rec.Package)
	assert.Equal(t, 4, rec.Seats)
	assert.Equal(t, "$196", rec.EstimatedPricing)
	assert.Equal(t, "https://your-streamlit.app/?tier=Fresh%20Start&seats=4", rec.NextSteps)
}

func TestRecommendCommand_BaseURLFlag(t *testing.T) {
	out, err := run(t, "--base-url", "https://offers.cogni.ai/", "recommend",
		"-o", "Insurance Provider / EAS", "-t", "51+ providers", "-c", "Over 1,000")
	require.NoError(t, err)

	var rec recommendation.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, catalog.EnterpriseAccess, rec.Package)
	assert.True(t, strings.HasPrefix(rec.NextSteps, "https://offers.cogni.ai/?tier=Enterprise%20Access"), rec.NextSteps)
}

func TestRecommendCommand_InvalidInput(t *testing.T) {
	_, err := run(t, "recommend", "--org-type", " ", "--team-size", "2–5 providers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
}

func TestRecommendCommand_RequiresFlags(t *testing.T) {
	_, err := run(t, "recommend", "--org-type", "Public Health Organization")
	assert.Error(t, err)
}

func TestPackagesCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := run(t, "packages")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1+len(catalog.Names))
		assert.True(t, strings.HasPrefix(lines[0], "PACKAGE"))
		for i, name := range catalog.Names {
			assert.True(t, strings.HasPrefix(lines[i+1], name), lines[i+1])
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "packages", "--format", "json")
		require.NoError(t, err)

		dec := json.NewDecoder(strings.NewReader(out))
		var names []string
		for dec.More() {
			var def catalog.PackageDefinition
			require.NoError(t, dec.Decode(&def))
			names = append(names, def.Name)
		}
		assert.Equal(t, catalog.Names, names)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "packages", "-f", "xml")
		assert.Error(t, err)
	})
}

func TestPackagesCommand_BadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := run(t, "--catalog", path, "packages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_LOAD_FAILED")
}

func TestProposalURLCommand(t *testing.T) {
	out, err := run(t, "proposal-url", "--tier", "Practice Plus", "--seats", "6")
	require.NoError(t, err)
	assert.Equal(t, "https://your-streamlit.app/?tier=Practice%20Plus&seats=6\n", out)

	_, err = run(t, "proposal-url", "--tier", "Gold", "--seats", "6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_NOT_FOUND")

	_, err = run(t, "proposal-url", "--tier", "Practice Plus", "--seats", "0")
	assert.Error(t, err)
}
