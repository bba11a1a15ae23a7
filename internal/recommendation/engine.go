// Package recommendation turns questionnaire answers into a package
// recommendation: normalize, classify, price, then compose the sales message.
package recommendation

import (
	"context"
	"time"

	"cogni-recommender/internal/catalog"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/metrics"
)

// DefaultNextStepsBaseURL is where proposal links point when no base is configured.
const DefaultNextStepsBaseURL = "https://your-streamlit.app/"

// Recommendation is the full result for one set of answers.
type Recommendation struct {
	Package          string `json:"package"`
	Seats            int    `json:"seats"`
	Price            int    `json:"price"`
	EstimatedPricing string `json:"estimated_pricing"`
	KeyFeatures      string `json:"key_features"`
	NextSteps        string `json:"next_steps"`
	SalesMessage     string `json:"sales_message"`
	Rule             string `json:"rule"`

	// Cached is set when the result came from the cache.
	Cached bool `json:"-"`
}

// Options configures an Engine. Zero values select the built-in catalog,
// the built-in messages and no cache.
type Options struct {
	Catalog          *catalog.Catalog
	Composer         *Composer
	Cache            Cache
	CacheTTL         time.Duration
	NextStepsBaseURL string
	Logger           logger.Logger
}

// Engine runs the recommendation pipeline. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	catalog       *catalog.Catalog
	composer      *Composer
	cache         Cache
	cacheTTL      time.Duration
	nextStepsBase string
	logger        logger.Logger
}

func NewEngine(opts Options) *Engine {
	e := &Engine{
		catalog:       opts.Catalog,
		composer:      opts.Composer,
		cache:         opts.Cache,
		cacheTTL:      opts.CacheTTL,
		nextStepsBase: opts.NextStepsBaseURL,
		logger:        opts.Logger,
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.composer == nil {
		e.composer = NewComposer()
	}
	if e.cache == nil {
		e.cache = NopCache{}
	}
	if e.nextStepsBase == "" {
		e.nextStepsBase = DefaultNextStepsBaseURL
	}
	if e.logger == nil {
		e.logger = logger.NewNoOpLogger()
	}
	e.logger = e.logger.WithFields(map[string]interface{}{"component": "recommendation"})
	return e
}

// Catalog returns the catalog the engine validates against.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// NextStepsBaseURL returns the base used for proposal links.
func (e *Engine) NextStepsBaseURL() string { return e.nextStepsBase }

// Recommend classifies a, prices the selection and composes the sales message.
func (e *Engine) Recommend(ctx context.Context, a Answers) (*Recommendation, error) {
	classification, err := Classify(a)
	if err != nil {
		return nil, err
	}

	key := cacheKey(classification.Normalized, a, e.nextStepsBase)
	if cached, ok := e.lookup(ctx, key); ok {
		metrics.ObserveRecommendation(cached.Package, cached.Rule, true)
		return cached, nil
	}

	rec, err := e.build(classification)
	if err != nil {
		return nil, err
	}

	if err := e.cache.Set(ctx, key, rec, e.cacheTTL); err != nil {
		e.logger.Warn("recommendation cache write failed", map[string]interface{}{"error": err.Error()})
	}

	metrics.ObserveRecommendation(rec.Package, rec.Rule, false)
	e.logger.Info("recommendation computed", map[string]interface{}{
		"package": rec.Package,
		"seats":   rec.Seats,
		"rule":    rec.Rule,
		"orgType": classification.Normalized.OrgType,
	})
	return rec, nil
}

func (e *Engine) lookup(ctx context.Context, key string) (*Recommendation, bool) {
	cached, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("recommendation cache read failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	if !ok || !e.catalog.Has(cached.Package) {
		return nil, false
	}
	cached.Cached = true
	return cached, true
}

func (e *Engine) build(c *Classification) (*Recommendation, error) {
	if _, err := e.catalog.Get(c.Package); err != nil {
		return nil, err
	}

	price := PriceFor(c.Package, c.Seats)
	rec := &Recommendation{
		Package:          c.Package,
		Seats:            c.Seats,
		Price:            price,
		EstimatedPricing: FormatPrice(price),
		KeyFeatures:      KeyFeatures(c.Package),
		NextSteps:        ProposalURL(e.nextStepsBase, c.Package, c.Seats),
		Rule:             c.Rule,
	}

	msg, err := e.composer.Compose(MessageData{
		Package:   rec.Package,
		Seats:     rec.Seats,
		Price:     rec.EstimatedPricing,
		Features:  rec.KeyFeatures,
		NextSteps: rec.NextSteps,
	})
	if err != nil {
		return nil, err
	}
	rec.SalesMessage = msg
	return rec, nil
}
