package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidatePort checks if a port number is valid.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// ValidateLogLevel checks if a log level is valid.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
}

// ValidateLogFormat checks if a log format is valid.
func ValidateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: "logging.format", Message: "must be one of: json, console"}
	}
}

// Validate checks that the configuration is valid. Run after defaults are
// applied so zero values never reach the checks.
func (c *Config) Validate() error {
	if err := ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if err := c.Assessment.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks the assessment bounds.
func (c *AssessmentConfig) Validate() error {
	if c.MaxUploadMB < 1 {
		return &ValidationError{Field: "assessment.max_upload_mb", Message: "must be at least 1"}
	}
	if c.MaxTextBytes < 1 {
		return &ValidationError{Field: "assessment.max_text_bytes", Message: "must be at least 1"}
	}
	if c.MaxBatchSize < 1 {
		return &ValidationError{Field: "assessment.max_batch_size", Message: "must be at least 1"}
	}
	if c.Concurrency < 1 {
		return &ValidationError{Field: "assessment.concurrency", Message: "must be at least 1"}
	}
	if c.RateLimitPerSec < 0 {
		return &ValidationError{Field: "assessment.rate_limit_per_sec", Message: "must not be negative"}
	}
	return nil
}

// Validate checks the auth section. A secret is only required when auth
// is enabled.
func (c *AuthConfig) Validate() error {
	if c.Enabled && c.JWTSecret == "" {
		return &ValidationError{Field: "auth.jwt_secret", Message: "is required when auth is enabled"}
	}
	return nil
}

// Validate checks the logging section.
func (c *LoggingConfig) Validate() error {
	if c.Level != "" {
		if err := ValidateLogLevel(c.Level); err != nil {
			return err
		}
	}
	if c.Format != "" {
		if err := ValidateLogFormat(c.Format); err != nil {
			return err
		}
	}
	return nil
}
