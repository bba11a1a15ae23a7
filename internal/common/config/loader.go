// internal/common/config/loader.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogni-recommender/internal/common/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RecommendPackageWorker is the worker key the defaults are registered under.
const RecommendPackageWorker = "recommend-package"

// Load resolves configuration from .env, configs/config.yaml, the
// configs/config.<APP_ENVIRONMENT>.yaml overlay and the process environment.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	if root := findProjectRoot(); root != "" {
		v.AddConfigPath(filepath.Join(root, "configs"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // overlay is optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	setWorkerDefaults(v)
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Workers = workerConfigs(v)

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key with viper; AutomaticEnv only overrides
// keys viper already knows about when unmarshalling.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "cogni-recommender")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 10000)
	v.SetDefault("server.read_timeout", 5000)
	v.SetDefault("server.write_timeout", 10000)
	v.SetDefault("server.shutdown_timeout", 15000)
	v.SetDefault("server.legacy_error_envelope", false)

	v.SetDefault("recommendation.next_steps_base_url", "https://your-streamlit.app/")
	v.SetDefault("recommendation.catalog_path", "")
	v.SetDefault("recommendation.contact_email", "support@cogni.ai")
	v.SetDefault("recommendation.contact_phone", "(555) 123-4567")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", 600000)

	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("camunda.enabled", false)
	v.SetDefault("camunda.broker_address", "")
	v.SetDefault("camunda.request_timeout", 30000)

	setWorkerDefault(v, RecommendPackageWorker)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func setWorkerDefault(v *viper.Viper, name string) {
	prefix := "workers." + name + "."
	v.SetDefault(prefix+"enabled", true)
	v.SetDefault(prefix+"max_jobs_active", 5)
	v.SetDefault(prefix+"timeout", 30000)
	v.SetDefault(prefix+"max_retries", 3)
}

// setWorkerDefaults covers worker entries declared only in YAML. Keys the
// file sets, zero included, keep their value.
func setWorkerDefaults(v *viper.Viper) {
	declared, _ := v.AllSettings()["workers"].(map[string]any)
	for name := range declared {
		setWorkerDefault(v, name)
	}
}

// workerConfigs reads each worker block key by key. Unmarshal decodes a
// map entry from the file alone, so defaults registered under
// workers.<name>.* only surface through the getters.
func workerConfigs(v *viper.Viper) map[string]WorkerConfig {
	workers := make(map[string]WorkerConfig)
	declared, _ := v.AllSettings()["workers"].(map[string]any)
	for name := range declared {
		prefix := "workers." + name + "."
		workers[name] = WorkerConfig{
			Enabled:       v.GetBool(prefix + "enabled"),
			MaxJobsActive: v.GetInt(prefix + "max_jobs_active"),
			Timeout:       v.GetInt(prefix + "timeout"),
			MaxRetries:    v.GetInt(prefix + "max_retries"),
		}
	}
	return workers
}

// loadEnvFile loads the first .env found in the working directory, its
// parents, or the project root. Missing files are not an error.
func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal {
			v.Set(key, expanded)
		}
	}
}

// applyDefaults fills zero values that survive unmarshalling for settings
// where zero is never meaningful.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15000
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 600000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Workers == nil {
		cfg.Workers = make(map[string]WorkerConfig)
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	base, err := url.Parse(cfg.Recommendation.NextStepsBaseURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return fmt.Errorf("recommendation.next_steps_base_url must be an absolute http(s) URL, got %q", cfg.Recommendation.NextStepsBaseURL)
	}

	if email := cfg.Recommendation.ContactEmail; email != "" && !validation.ValidateEmail(email) {
		return fmt.Errorf("recommendation.contact_email is not a valid address: %q", email)
	}
	if phone := cfg.Recommendation.ContactPhone; phone != "" && !validation.ValidatePhone(phone) {
		return fmt.Errorf("recommendation.contact_phone is not a valid number: %q", phone)
	}

	if cfg.Cache.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when cache is enabled")
	}

	if cfg.Camunda.Enabled && cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required when camunda is enabled")
	}

	for name, worker := range cfg.Workers {
		if worker.MaxJobsActive < 1 {
			return fmt.Errorf("workers.%s.max_jobs_active must be at least 1, got %d", name, worker.MaxJobsActive)
		}
		if worker.Timeout < 1 {
			return fmt.Errorf("workers.%s.timeout must be positive, got %d", name, worker.Timeout)
		}
		if worker.MaxRetries < 0 {
			return fmt.Errorf("workers.%s.max_retries must not be negative, got %d", name, worker.MaxRetries)
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults.
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}
	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

// IsWorkerEnabled checks if a specific worker is enabled.
func IsWorkerEnabled(cfg *Config, workerName string) bool {
	return GetWorkerConfig(cfg, workerName).Enabled
}
