package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposal_MissingParameters(t *testing.T) {
	r := newTestRouter(t, createTestConfig(), nil)

	for _, path := range []string{"/proposal", "/proposal?tier=Fresh%20Start", "/proposal?seats=4", "/proposal?tier=&seats="} {
		t.Run(path, func(t *testing.T) {
			w := do(r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, missingRecommendation)
			assert.NotContains(t, body, "Recommended Package")
			assert.NotContains(t, body, "Explore All Packages")
		})
	}
}

func TestProposal_RendersRecommendation(t *testing.T) {
	r := newTestRouter(t, createTestConfig(), nil)

	w := do(r, http.MethodGet, "/proposal?tier=Fresh%20Start&seats=4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "Recommended Package: Fresh Start")
	assert.Contains(t, body, "<strong>Recommended Seats:</strong> 4")
	assert.Contains(t, body, "Solo or small private practice")
	assert.Contains(t, body, "$199/month base &#43; $40/seat/month")
	assert.Contains(t, body, "Email: support@cogni.ai")
	assert.Contains(t, body, "Phone: (555) 123-4567")
	assert.Contains(t, body, "This is your recommended package")
	assert.NotContains(t, body, missingRecommendation)

	// Every other package offers a switch link that keeps the seats.
	assert.NotContains(t, body, "Select Fresh Start")
	assert.Contains(t, body, `href="/proposal?tier=Practice%20Plus&amp;seats=4"`)
	assert.Contains(t, body, "Select Practice Plus")
	assert.Contains(t, body, "Select Community Access")
	assert.Contains(t, body, "Select Enterprise Care (Public Health)")
	assert.Contains(t, body, "Select Enterprise Access (Insurance &amp; EAS)")
	assert.Equal(t, 1, strings.Count(body, "This is your recommended package"))
}

func TestProposal_AmpersandTier(t *testing.T) {
	r := newTestRouter(t, createTestConfig(), nil)

	w := do(r, http.MethodGet, "/proposal?tier=Enterprise%20Access%20%28Insurance%20%26%20EAS%29&seats=20", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Recommended Package: Enterprise Access (Insurance &amp; EAS)")
	assert.Contains(t, body, "Select Fresh Start")
	assert.NotContains(t, body, "Select Enterprise Access")
}

func TestProposal_UnknownTier(t *testing.T) {
	r := newTestRouter(t, createTestConfig(), nil)

	w := do(r, http.MethodGet, "/proposal?tier=Gold&seats=4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "could not find the package")
	assert.NotContains(t, w.Body.String(), "Recommended Package")
}

func TestProposal_InvalidSeats(t *testing.T) {
	r := newTestRouter(t, createTestConfig(), nil)

	w := do(r, http.MethodGet, "/proposal?tier=Fresh%20Start&seats=many", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "seat count")
}

func TestProposal_ContactDetailsFromConfig(t *testing.T) {
	cfg := createTestConfig()
	cfg.Recommendation.ContactEmail = "sales@example.org"
	r := newTestRouter(t, cfg, nil)

	w := do(r, http.MethodGet, "/proposal?tier=Practice%20Plus&seats=8", "")
	assert.Contains(t, w.Body.String(), "Email: sales@example.org")
}
