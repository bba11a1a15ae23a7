package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"cogni-recommender/internal/recommendation"

	"github.com/gin-gonic/gin"
)

//go:embed templates/proposal.html
var templateFS embed.FS

const missingRecommendation = "No recommendation received. Please complete the chatbot conversation."

type proposalPage struct {
	tmpl *template.Template
}

func newProposalPage() *proposalPage {
	return &proposalPage{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/proposal.html")),
	}
}

type proposalView struct {
	Advisory     string
	Package      string
	Seats        int
	IdealClient  string
	SeatRange    string
	Pricing      string
	Features     []string
	ContactEmail string
	ContactPhone string
	Packages     []packageTab
}

type packageTab struct {
	Name        string
	IdealClient string
	SeatRange   string
	Pricing     string
	Features    []string
	Recommended bool
	SelectURL   string
}

// proposalHandler renders the personalized proposal for ?tier=&seats=. The
// query values arrive already unescaped.
func (s *Server) proposalHandler(c *gin.Context) {
	view := proposalView{
		ContactEmail: s.cfg.Recommendation.ContactEmail,
		ContactPhone: s.cfg.Recommendation.ContactPhone,
	}

	tier := strings.TrimSpace(c.Query("tier"))
	seatsRaw := strings.TrimSpace(c.Query("seats"))
	if tier == "" || seatsRaw == "" {
		view.Advisory = missingRecommendation
		s.renderProposal(c, http.StatusOK, view)
		return
	}

	seats, err := strconv.Atoi(seatsRaw)
	if err != nil || seats < 1 {
		view.Advisory = "The seat count in this link is not valid. Please complete the chatbot conversation again."
		s.renderProposal(c, http.StatusBadRequest, view)
		return
	}

	def, err := s.packageOrNotFound(tier)
	if err != nil {
		view.Advisory = "We could not find the package \"" + tier + "\". Please complete the chatbot conversation again."
		s.renderProposal(c, http.StatusNotFound, view)
		return
	}

	view.Package = def.Name
	view.Seats = seats
	view.IdealClient = def.IdealClient
	view.SeatRange = def.SeatRange
	view.Pricing = def.PricingFormula
	view.Features = def.Features

	for p := range s.engine.Catalog().All() {
		view.Packages = append(view.Packages, packageTab{
			Name:        p.Name,
			IdealClient: p.IdealClient,
			SeatRange:   p.SeatRange,
			Pricing:     p.PricingFormula,
			Features:    p.Features,
			Recommended: p.Name == def.Name,
			SelectURL:   recommendation.ProposalURL(c.Request.URL.Path, p.Name, seats),
		})
	}

	s.renderProposal(c, http.StatusOK, view)
}

func (s *Server) renderProposal(c *gin.Context, status int, view proposalView) {
	var buf bytes.Buffer
	if err := s.proposal.tmpl.Execute(&buf, view); err != nil {
		s.logger.Error("proposal page render failed", map[string]interface{}{
			"requestId": c.GetString(requestIDKey),
			"error":     err.Error(),
		})
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
