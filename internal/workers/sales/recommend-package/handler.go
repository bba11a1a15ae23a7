package recommendpackage

import (
	"context"
	"time"

	"cogni-recommender/internal/common/camunda"
	"cogni-recommender/internal/common/config"
	apperrors "cogni-recommender/internal/common/errors"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/metrics"
	"cogni-recommender/internal/recommendation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = config.RecommendPackageWorker

// Recommender is the part of the engine the worker uses.
type Recommender interface {
	Recommend(ctx context.Context, a recommendation.Answers) (*recommendation.Recommendation, error)
}

type Handler struct {
	config       *Config
	engine       Recommender
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, engine Recommender, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := inputFromJob(job)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

// Execute runs the recommendation for one job's input.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()
	rec, err := h.engine.Recommend(ctx, recommendation.Answers{
		OrgType:        input.OrgType,
		TeamSize:       input.TeamSize,
		ClientVolume:   input.ClientVolume,
		ServiceModel:   input.ServiceModel,
		Specialization: input.Specialization,
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("recommendation ready", map[string]interface{}{
		"package":  rec.Package,
		"cached":   rec.Cached,
		"duration": time.Since(start).String(),
	})

	return &Output{
		RecommendedPackage: rec.Package,
		RecommendedSeats:   rec.Seats,
		EstimatedPricing:   rec.EstimatedPricing,
		KeyFeatures:        rec.KeyFeatures,
		NextSteps:          rec.NextSteps,
		SalesMessage:       rec.SalesMessage,
		MatchedRule:        rec.Rule,
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	err := camunda.Retry(ctx, h.config.Retry, "complete-job", func(ctx context.Context) error {
		cmd, err := client.NewCompleteJobCommand().
			JobKey(job.Key).
			VariablesFromObject(output)
		if err != nil {
			return err
		}
		_, err = cmd.Send(ctx)
		return err
	})
	if err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(apperrors.CodeOf(err))).Inc()
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := string(apperrors.CodeOf(err))
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
	metrics.ObserveFailure(code)
	h.errorHandler.HandleJobError(ctx, client, job, err)
}
