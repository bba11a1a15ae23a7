package api

import (
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"time"

	"cogni-recommender/internal/catalog"
	apperrors "cogni-recommender/internal/common/errors"
	"cogni-recommender/internal/common/metrics"

	"github.com/gin-gonic/gin"
)

const maxRequestBody = 64 << 10

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Cogni package recommendation API"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

func (s *Server) ready(c *gin.Context) {
	resp := ReadyResponse{Status: "ready", Checks: make(map[string]string, len(s.checks))}
	status := http.StatusOK

	for name, check := range s.checks {
		if err := check(c.Request.Context()); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "not ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	c.JSON(status, resp)
}

func (s *Server) getRecommendation(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody))
	if err != nil {
		s.respondError(c, apperrors.NewRequestValidationFailedError("request body could not be read"))
		return
	}

	if err := recommendationRequestSchema.ValidateJSON(body).Err(); err != nil {
		s.respondError(c, err)
		return
	}

	var req RecommendationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(c, apperrors.NewRequestValidationFailedError(err.Error()))
		return
	}

	start := time.Now()
	rec, err := s.engine.Recommend(c.Request.Context(), req.answers())
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.obs.RecordRecommendation(c.Request.Context(), rec.Package, time.Since(start))

	c.JSON(http.StatusOK, newRecommendationResponse(rec))
}

func (s *Server) packages(c *gin.Context) {
	c.JSON(http.StatusOK, PackagesResponse{
		Packages: slices.Collect(s.engine.Catalog().All()),
	})
}

// respondError writes {"error": msg}. The status follows the error code
// unless the legacy envelope is configured, which always answers 200.
func (s *Server) respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	metrics.ObserveFailure(string(code))

	status := apperrors.HTTPStatus(code)
	fields := map[string]interface{}{
		"requestId": c.GetString(requestIDKey),
		"errorCode": string(code),
		"error":     err.Error(),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("recommendation request failed", fields)
	} else {
		s.logger.Warn("recommendation request rejected", fields)
	}

	if s.cfg.Server.LegacyErrorBody {
		status = http.StatusOK
	}
	c.JSON(status, ErrorResponse{Error: errorMessage(err)})
}

func errorMessage(err error) string {
	stdErr, ok := apperrors.As(err)
	if !ok {
		return "internal server error"
	}
	if stdErr.Details != "" {
		return stdErr.Message + ": " + stdErr.Details
	}
	return stdErr.Message
}

// packageOrNotFound resolves a tier name for the proposal page.
func (s *Server) packageOrNotFound(tier string) (catalog.PackageDefinition, error) {
	def, err := s.engine.Catalog().Get(tier)
	if err != nil {
		return catalog.PackageDefinition{}, apperrors.NewResourceNotFoundError("catalog", "package: "+tier)
	}
	return def, nil
}
