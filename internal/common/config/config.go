// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App            AppConfig               `mapstructure:"app"`
	Server         ServerConfig            `mapstructure:"server"`
	Recommendation RecommendationConfig    `mapstructure:"recommendation"`
	Cache          CacheConfig             `mapstructure:"cache"`
	Database       DatabaseConfig          `mapstructure:"database"`
	Camunda        CamundaConfig           `mapstructure:"camunda"`
	Workers        map[string]WorkerConfig `mapstructure:"workers"`
	Logging        LoggingConfig           `mapstructure:"logging"`
	Metrics        MetricsConfig           `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int  `mapstructure:"port"`
	ReadTimeout     int  `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int  `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int  `mapstructure:"shutdown_timeout"` // milliseconds
	LegacyErrorBody bool `mapstructure:"legacy_error_envelope"`
}

// RecommendationConfig holds everything the engine and proposal page read.
type RecommendationConfig struct {
	NextStepsBaseURL string `mapstructure:"next_steps_base_url"`
	CatalogPath      string `mapstructure:"catalog_path"`
	ContactEmail     string `mapstructure:"contact_email"`
	ContactPhone     string `mapstructure:"contact_phone"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	TTL     int  `mapstructure:"ttl"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
