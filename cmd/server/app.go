package main

import (
	"log/slog"

	"github.com/phrazzld/srs-calc/internal/codec"
	"github.com/phrazzld/srs-calc/internal/config"
	"github.com/phrazzld/srs-calc/internal/domain/srs"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	srsService srs.Service
	codecs     *codec.Registry
}

// newApplication wires the scheduling service and codec registry from the
// loaded configuration.
func newApplication(cfg *config.Config, log *slog.Logger) *application {
	params := srs.NewParams(srs.ParamsConfig{
		MinFactor:            cfg.SRS.MinFactor,
		HardFactorPenalty:    cfg.SRS.HardFactorPenalty,
		PartialFactorPenalty: cfg.SRS.PartialFactorPenalty,
		EasyFactorBonus:      cfg.SRS.EasyFactorBonus,
		PartialMultiplier:    cfg.SRS.PartialMultiplier,
	})

	return &application{
		config:     cfg,
		logger:     log,
		srsService: srs.NewService(params, srs.SystemClock()),
		codecs:     codec.NewRegistry(),
	}
}

// cleanup releases resources on shutdown. The service is stateless, so there
// is nothing to flush beyond a final log line.
func (app *application) cleanup() {
	app.logger.Info("application cleanup completed")
}
