package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/apiref/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Catalog.Path != "" {
		slog.Debug("Catalog configuration", "path_present", true)
	}

	return cfg, nil
}
