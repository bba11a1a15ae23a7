package camunda

import (
	"time"

	"cogni-recommender/internal/common/config"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler completes, fails or throws for every job it receives.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// JobWorker is a single open job subscription.
type JobWorker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// NewWorker opens a job worker for taskType. Every job is timed and counted
// in the worker job metrics.
func NewWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler JobHandler, log logger.Logger) *JobWorker {
	log = log.WithFields(map[string]interface{}{"taskType": taskType})

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(instrument(taskType, handler)).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	log.Info("worker started", map[string]interface{}{
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})

	return &JobWorker{
		worker:   jobWorker,
		logger:   log,
		taskType: taskType,
	}
}

func instrument(taskType string, handler JobHandler) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		active := metrics.WorkerJobsActive.WithLabelValues(taskType)
		active.Inc()
		defer active.Dec()

		start := time.Now()
		handler.Handle(client, job)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(time.Since(start).Seconds())
	}
}

// Stop closes the subscription and waits for in-flight jobs.
func (w *JobWorker) Stop() {
	w.logger.Info("stopping worker", nil)
	w.worker.Close()
	w.worker.AwaitClose()
}
