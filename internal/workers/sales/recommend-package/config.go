package recommendpackage

import (
	"time"

	"cogni-recommender/internal/common/camunda"
	"cogni-recommender/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	Retry   *camunda.RetryConfig
}

// LoadConfig derives the handler settings from the worker's config entry.
func LoadConfig(wcfg config.WorkerConfig) *Config {
	timeout := config.GetDuration(wcfg.Timeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		Timeout: timeout,
		Retry: &camunda.RetryConfig{
			MaxRetries: wcfg.MaxRetries,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   5 * time.Second,
		},
	}
}
