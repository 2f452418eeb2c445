// The httpd binary serves the document triage API.
package main

import (
	"fmt"
	"os"

	"github.com/dealdesk/triage/internal/bootstrap"
	"github.com/dealdesk/triage/internal/logging"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting triage HTTP server",
		logging.String("version", cfg.Service.Version),
		logging.String("environment", cfg.Service.Environment),
		logging.Int("port", cfg.Service.Port),
		logging.Bool("debug", cfg.Service.Debug),
	)

	components := bootstrap.NewHTTPComponents(cfg, log)

	if runErr := components.Server.Run(); runErr != nil {
		log.Error("Server error", logging.Error(runErr))
		os.Exit(1)
	}
}
