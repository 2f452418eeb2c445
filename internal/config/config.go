package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "triage"
	defaultServiceVersion  = "1.0.0"
	defaultEnvironment     = "development"
	defaultServicePort     = 8084
	defaultShutdownTimeout = 10 * time.Second
	defaultConcurrency     = 10
	defaultMaxBatchSize    = 100
	defaultMaxUploadMB     = 50
	defaultMaxTextBytes    = 16 << 20
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config holds all configuration for the triage service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Assessment AssessmentConfig `yaml:"assessment"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Environment     string        `env:"APP_ENV"         yaml:"environment"`
	Port            int           `env:"TRIAGE_PORT"     yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"       yaml:"debug"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AssessmentConfig bounds document intake and batch processing.
type AssessmentConfig struct {
	// MaxUploadMB is the upload size ceiling reported in validation
	// reasons and enforced before analysis.
	MaxUploadMB int `env:"TRIAGE_MAX_UPLOAD_MB" yaml:"max_upload_mb"`
	// MaxTextBytes caps how much extracted text a single request may carry.
	MaxTextBytes int `yaml:"max_text_bytes"`
	// MaxBatchSize is the largest accepted batch request.
	MaxBatchSize int `yaml:"max_batch_size"`
	// Concurrency is the batch worker pool size.
	Concurrency int `env:"TRIAGE_CONCURRENCY" yaml:"concurrency"`
	// RateLimitPerSec caps assessed documents per second across the batch
	// pool. Zero disables rate limiting.
	RateLimitPerSec float64 `env:"TRIAGE_RATE_LIMIT" yaml:"rate_limit_per_sec"`
	// RateLimitBurst is the token bucket burst when rate limiting is on.
	RateLimitBurst int `yaml:"rate_limit_burst"`
}

// AuthConfig holds authentication configuration. Auth middleware is only
// installed when a secret is configured.
type AuthConfig struct {
	Enabled   bool   `env:"AUTH_ENABLED"    yaml:"enabled"`
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string   `env:"LOG_LEVEL"  yaml:"level"`
	Format      string   `env:"LOG_FORMAT" yaml:"format"`
	Development bool     `yaml:"development"`
	OutputPaths []string `yaml:"output_paths"`
}

// TelemetryConfig holds metrics and tracing settings.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MaxUploadBytes converts the configured ceiling to bytes.
func (a AssessmentConfig) MaxUploadBytes() int64 {
	return int64(a.MaxUploadMB) << 20
}

// Load loads configuration from the specified path, applies defaults and
// env overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithDefaults[Config](path, SetDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return cfg, nil
}

// SetDefaults applies default values to the config.
func SetDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setAssessmentDefaults(&cfg.Assessment)
	setLoggingDefaults(&cfg.Logging)
	// Auth defaults are handled by env tags - no explicit defaults needed
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Environment == "" {
		s.Environment = defaultEnvironment
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownTimeout
	}
}

func setAssessmentDefaults(a *AssessmentConfig) {
	if a.MaxUploadMB == 0 {
		a.MaxUploadMB = defaultMaxUploadMB
	}
	if a.MaxTextBytes == 0 {
		a.MaxTextBytes = defaultMaxTextBytes
	}
	if a.MaxBatchSize == 0 {
		a.MaxBatchSize = defaultMaxBatchSize
	}
	if a.Concurrency == 0 {
		a.Concurrency = defaultConcurrency
	}
	if a.RateLimitPerSec > 0 && a.RateLimitBurst == 0 {
		a.RateLimitBurst = a.Concurrency
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
	if len(l.OutputPaths) == 0 {
		l.OutputPaths = []string{"stdout"}
	}
}
