// Package api serves the recommendation endpoint, the proposal page and the
// operational probes over gin.
package api

import (
	"context"
	"net/http"
	"time"

	"cogni-recommender/internal/common/config"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/observability"
	"cogni-recommender/internal/recommendation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type Dependencies struct {
	Config        *config.Config
	Engine        *recommendation.Engine
	Logger        logger.Logger
	Observability *observability.Observability
	Checks        map[string]ReadinessCheck
}

type Server struct {
	cfg      *config.Config
	engine   *recommendation.Engine
	logger   logger.Logger
	obs      *observability.Observability
	checks   map[string]ReadinessCheck
	proposal *proposalPage
}

func NewServer(deps Dependencies) *Server {
	s := &Server{
		cfg:      deps.Config,
		engine:   deps.Engine,
		logger:   deps.Logger,
		obs:      deps.Observability,
		checks:   deps.Checks,
		proposal: newProposalPage(),
	}
	if s.cfg == nil {
		s.cfg = &config.Config{Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	}
	if s.logger == nil {
		s.logger = logger.NewNoOpLogger()
	}
	if s.obs == nil {
		s.obs = &observability.Observability{}
	}
	if s.engine == nil {
		s.engine = recommendation.NewEngine(recommendation.Options{Logger: s.logger})
	}
	s.logger = s.logger.WithFields(map[string]interface{}{"component": "api"})
	return s
}

// Router builds the gin engine with every route and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Recovery(s.logger), RequestLogger(s.logger, s.obs))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.GET("/ready", s.ready)
	r.POST("/getRecommendation", s.getRecommendation)
	r.GET("/packages", s.packages)
	r.GET("/proposal", s.proposalHandler)

	if s.cfg.Metrics.Enabled {
		r.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	return r
}

// HTTPServer wraps the router in an http.Server with the configured timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  config.GetDuration(s.cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(s.cfg.Server.WriteTimeout),
	}
}
