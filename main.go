package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"fgexport/config"
	"fgexport/database"
	"fgexport/exporter"
	"fgexport/logger"
	"fgexport/models"
)

func main() {
	// Failures are reported by run; the process still ends with status 0
	_ = run(context.Background(), os.Stdout, database.Connect)
}

// run performs one export, writing the user-facing report to stdout
func run(ctx context.Context, stdout io.Writer, connect exporter.ConnectFunc) error {
	// Load environment variables from .env file
	envErr := config.LoadEnvFile()

	rep := exporter.NewReporter(stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("invalid configuration")
		rep.Failure(err)
		return err
	}

	logger.Init(cfg.LogLevel, cfg.Development)
	log := logger.WithComponent("main")
	if envErr != nil {
		log.Warn().Err(envErr).Msg(".env file not found or could not be loaded")
	}

	startTime := time.Now()
	log.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.Database).
		Msg("starting export")

	options := models.WriteOptions{
		Directory: cfg.ExportDir,
		Filename:  models.FGMasterExportFile,
	}

	result, err := exporter.Run(ctx, cfg.Database, options, connect, rep)
	switch {
	case errors.Is(err, exporter.ErrEmptyTable):
		log.Warn().Str("table", models.FGMasterTable).Msg("nothing exported")
		return nil
	case err != nil:
		log.Error().Err(err).Msg("export failed")
		return err
	}

	log.Info().
		Int("records", result.Records).
		Str("path", result.Path).
		Dur("elapsed", time.Since(startTime)).
		Msg("export completed")
	return nil
}
