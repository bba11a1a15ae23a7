package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	apperrors "cogni-recommender/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EveryPackageHasFeatures(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			def, err := c.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, def.Name)
			assert.NotEmpty(t, def.Features)
			assert.NotEmpty(t, def.IdealClient)
			assert.NotEmpty(t, def.SeatRange)
			assert.NotEmpty(t, def.PricingFormula)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("Platinum")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePackageNotFound))
	assert.False(t, Default().Has("Platinum"))
}

func TestAll_DeclarationOrderAndRestartable(t *testing.T) {
	c := Default()

	collect := func() []string {
		var out []string
		for def := range c.All() {
			out = append(out, def.Name)
		}
		return out
	}

	assert.Equal(t, Names, collect())
	assert.Equal(t, Names, collect(), "second pass must yield the same sequence")
}

func TestAll_EarlyStop(t *testing.T) {
	var seen []string
	for def := range Default().All() {
		seen = append(seen, def.Name)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{FreshStart, PracticePlus}, seen)
}

func TestGet_ReturnsCopy(t *testing.T) {
	def, err := Default().Get(FreshStart)
	require.NoError(t, err)
	def.Features[0] = "mutated"

	again, err := Default().Get(FreshStart)
	require.NoError(t, err)
	assert.Equal(t, "Basic self-guided tools", again.Features[0])
}

func TestNew_Validation(t *testing.T) {
	valid := func() []PackageDefinition {
		out := make([]PackageDefinition, len(builtin))
		for i, def := range builtin {
			out[i] = def.clone()
		}
		return out
	}

	tests := []struct {
		name   string
		mutate func([]PackageDefinition) []PackageDefinition
	}{
		{"too few", func(d []PackageDefinition) []PackageDefinition { return d[:4] }},
		{"unknown name", func(d []PackageDefinition) []PackageDefinition { d[0].Name = "Gold"; return d }},
		{"duplicate", func(d []PackageDefinition) []PackageDefinition { d[1].Name = FreshStart; return d }},
		{"no features", func(d []PackageDefinition) []PackageDefinition { d[2].Features = nil; return d }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(valid()))
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogLoadFailed))
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses builtin", func(t *testing.T) {
		c, err := LoadFile("")
		require.NoError(t, err)
		assert.Same(t, Default(), c)
	})

	t.Run("override display text", func(t *testing.T) {
		defs := make([]PackageDefinition, len(builtin))
		copy(defs, builtin)
		defs[0].PricingFormula = "$149/month"

		raw, err := json.Marshal(Document{Version: "2", Packages: defs})
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, raw, 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err)
		def, err := c.Get(FreshStart)
		require.NoError(t, err)
		assert.Equal(t, "$149/month", def.PricingFormula)
	})

	t.Run("file order does not change iteration order", func(t *testing.T) {
		defs := make([]PackageDefinition, len(builtin))
		copy(defs, builtin)
		slices.Reverse(defs)

		raw, err := json.Marshal(Document{Packages: defs})
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, raw, 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err)

		var names []string
		for def := range c.All() {
			names = append(names, def.Name)
		}
		assert.Equal(t, Names, names)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

		_, err := LoadFile(path)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogLoadFailed))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogLoadFailed))
	})
}
