// Package metrics holds the Prometheus collectors for the recommender and
// its job worker. They register with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation sources.
const (
	SourceComputed = "computed"
	SourceCache    = "cache"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendations served",
		},
		[]string{"package", "rule", "source"},
	)

	RecommendationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_failures_total",
			Help: "Total number of recommendation requests that failed",
		},
		[]string{"code"},
	)

	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

// ObserveRecommendation counts one served recommendation.
func ObserveRecommendation(pkg, rule string, cached bool) {
	source := SourceComputed
	if cached {
		source = SourceCache
	}
	RecommendationsTotal.WithLabelValues(pkg, rule, source).Inc()
}

// ObserveFailure counts one failed recommendation by error code.
func ObserveFailure(code string) {
	RecommendationFailures.WithLabelValues(code).Inc()
}
