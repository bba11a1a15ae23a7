package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRecommendation(t *testing.T) {
	computed := RecommendationsTotal.WithLabelValues("Fresh Start", "org-type", SourceComputed)
	cached := RecommendationsTotal.WithLabelValues("Fresh Start", "org-type", SourceCache)
	beforeComputed := testutil.ToFloat64(computed)
	beforeCached := testutil.ToFloat64(cached)

	ObserveRecommendation("Fresh Start", "org-type", false)
	ObserveRecommendation("Fresh Start", "org-type", true)
	ObserveRecommendation("Fresh Start", "org-type", true)

	assert.Equal(t, beforeComputed+1, testutil.ToFloat64(computed))
	assert.Equal(t, beforeCached+2, testutil.ToFloat64(cached))
}

func TestObserveFailure(t *testing.T) {
	c := RecommendationFailures.WithLabelValues("INVALID_INPUT")
	before := testutil.ToFloat64(c)

	ObserveFailure("INVALID_INPUT")

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
