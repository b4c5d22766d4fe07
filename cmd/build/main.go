// Command build writes the static JSON report for a dataset.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/skyrim-alchemy/internal/bootstrap"
	"github.com/osse101/skyrim-alchemy/internal/config"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
	"github.com/osse101/skyrim-alchemy/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s: %v", bootstrap.ErrMsgFailedLoadConfig, err)
	}

	out := flag.String("out", cfg.OutputDir, "directory to write the report into")
	datasetPath := flag.String("dataset", cfg.DatasetPath, "dataset JSON file or CSV directory; empty for the embedded sample")
	recommended := flag.Int("recommended", 0, "cap on recommended.json entries, 0 for all")
	flag.Parse()
	cfg.DatasetPath = *datasetPath

	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	ctx = logger.WithRequestID(ctx, runID)

	if err := run(ctx, cfg, runID, *out, *recommended); err != nil {
		logger.FromContext(ctx).Error("Report build failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, runID, out string, recommended int) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	services, err := bootstrap.InitializeServices(ctx, cfg, runID)
	if err != nil {
		return err
	}

	writer := report.NewWriter(services.Report, report.WriterConfig{
		Workers:     cfg.Workers,
		Recommended: recommended,
	})
	n, err := writer.Write(ctx, out)
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(ctx, cfg.MetricsFile); err != nil {
			return err
		}
	}

	log.Info("Report build complete",
		"out", out,
		"files", n,
		"dataset", services.Store.Info().Version,
		"checksum", services.Store.Info().Checksum,
		"duration", time.Since(start))
	return nil
}
