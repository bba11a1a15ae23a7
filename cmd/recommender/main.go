// cmd/recommender/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cogni-recommender/internal/api"
	"cogni-recommender/internal/catalog"
	"cogni-recommender/internal/common/camunda"
	"cogni-recommender/internal/common/config"
	"cogni-recommender/internal/common/database"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/observability"
	"cogni-recommender/internal/recommendation"
	recommendpackage "cogni-recommender/internal/workers/sales/recommend-package"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting recommender", map[string]interface{}{"environment": cfg.App.Environment})

	obs := observability.New(cfg.App.Name, prometheus.DefaultRegisterer, log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(ctx); err != nil {
			log.Warn("observability shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	cat, err := catalog.LoadFile(cfg.Recommendation.CatalogPath)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	checks := make(map[string]api.ReadinessCheck)
	opts := recommendation.Options{
		Catalog:          cat,
		NextStepsBaseURL: cfg.Recommendation.NextStepsBaseURL,
		CacheTTL:         config.GetDuration(cfg.Cache.TTL),
		Logger:           log,
	}

	// --- Init Redis cache with retry ---
	if cfg.Cache.Enabled {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(context.Background())
		}, 5, time.Second, log, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()

		opts.Cache = recommendation.NewRedisCache(redisClient)
		checks["cache"] = redisClient.Ping
		log.Info("recommendation cache enabled", map[string]interface{}{"ttl_ms": cfg.Cache.TTL})
	}

	engine := recommendation.NewEngine(opts)

	// --- Init Zeebe client and job worker ---
	var (
		zeebe   *camunda.Client
		workers []*camunda.JobWorker
	)
	if cfg.Camunda.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			zeebe, err = camunda.NewClientWithConfig(camunda.ConfigFrom(cfg.Camunda))
			return err
		}, 10, 2*time.Second, log, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		checks["zeebe"] = zeebe.HealthCheck

		if config.IsWorkerEnabled(cfg, recommendpackage.TaskType) {
			wcfg := config.GetWorkerConfig(cfg, recommendpackage.TaskType)
			handler := recommendpackage.NewHandler(recommendpackage.LoadConfig(wcfg), engine, log)
			workers = append(workers, camunda.NewWorker(zeebe.GetClient(), recommendpackage.TaskType, wcfg, handler, log))
		} else {
			log.Info("worker disabled", map[string]interface{}{"taskType": recommendpackage.TaskType})
		}
	}

	// --- HTTP Server ---
	server := api.NewServer(api.Dependencies{
		Config:        cfg,
		Engine:        engine,
		Logger:        log,
		Observability: obs,
		Checks:        checks,
	})
	srv := server.HTTPServer(fmt.Sprintf(":%d", cfg.Server.Port))

	go func() {
		log.Info("http server listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", map[string]interface{}{"error": err.Error()})
	}

	for _, w := range workers {
		w.Stop()
	}
	if zeebe != nil {
		if err := zeebe.Close(); err != nil {
			log.Error("error closing Zeebe client", map[string]interface{}{"error": err.Error()})
		}
	}

	log.Info("recommender stopped", nil)
}
