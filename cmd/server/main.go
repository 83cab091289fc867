// Package main implements the entry point for the srs-calc server, a
// stateless spaced-repetition calculator: callers submit an item's current
// scheduling state plus a recall signal and receive the updated state and
// next review date.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/srs-calc/internal/config"
	"github.com/phrazzld/srs-calc/internal/platform/logger"
)

// main is the entry point for the srs-calc server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and assembles the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Scheduling parameters",
		"min_factor", cfg.SRS.MinFactor,
		"hard_factor_penalty", cfg.SRS.HardFactorPenalty,
		"partial_factor_penalty", cfg.SRS.PartialFactorPenalty,
		"easy_factor_bonus", cfg.SRS.EasyFactorBonus,
		"partial_multiplier", cfg.SRS.PartialMultiplier)

	return newApplication(cfg, appLogger), nil
}
