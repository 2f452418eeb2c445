package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dealdesk/triage/internal/config"
	"github.com/dealdesk/triage/internal/logging"
)

// LoadConfig loads configuration. Uses defaults if the file doesn't exist;
// a file that fails to parse or validate is a startup error.
func LoadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		log.Printf("Warning: config file not found (%s), using defaults", configPath)
		cfg = &config.Config{}
		config.SetDefaults(cfg)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Logging.Development || cfg.Service.Debug,
		OutputPaths: cfg.Logging.OutputPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.With(logging.String("service", cfg.Service.Name)), nil
}
