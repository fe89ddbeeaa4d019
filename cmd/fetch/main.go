// Command fetch downloads the SSA baby names archive, flattens it, and writes
// the flat table (data.csv). The archive is cached on disk so repeat runs
// skip the download.
//
// Configuration comes from environment variables; see internal/config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/PhantomInsights/baby-names-analysis/internal/adapter/http"
	"github.com/PhantomInsights/baby-names-analysis/internal/adapter/ssa"
	"github.com/PhantomInsights/baby-names-analysis/internal/config"
	"github.com/PhantomInsights/baby-names-analysis/internal/observability"
	"github.com/PhantomInsights/baby-names-analysis/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := ssa.NewClient(cfg.HTTPTimeout, logger)
	fetcher := ssa.NewCachedFetcher(client, cfg.ArchiveCache, logger)
	loader := pipeline.CSVLoader{Path: cfg.OutputCSV}

	p := pipeline.New(fetcher, pipeline.ArchiveNormalizer{}, loader, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional observability endpoint, served only for the duration of the run.
	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics endpoint error", "error", err)
			}
		}()
	}

	result, runErr := p.Run(ctx, cfg.DatasetURL)

	if srv != nil {
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("metrics endpoint shutdown error", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		os.Exit(1)
	}

	logger.Info("flat table written",
		"path", cfg.OutputCSV,
		"records", result.Records,
		"years", result.Years,
	)
}
