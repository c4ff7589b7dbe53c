package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/api"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/batch"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/config"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/outline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	opts := outline.DefaultOptions()
	if cfg.RulesFile != "" {
		var err error
		opts, err = outline.LoadOptions(cfg.RulesFile)
		if err != nil {
			log.Error("invalid rules file", "path", cfg.RulesFile, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(log, opts, cfg.WorkerCount)

	if cfg.Mode == "serve" {
		serve(ctx, log, cfg, opts, runner)
		return
	}

	log.Info("starting batch run", "input", cfg.InputDir, "output", cfg.OutputDir, "workers", cfg.WorkerCount)
	if err := runner.Run(ctx, cfg.InputDir, cfg.OutputDir); err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, log *slog.Logger, cfg config.Config, opts outline.Options, runner *batch.Runner) {
	srv := api.NewServer(log, cfg, opts, runner.Stats())

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting outliner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
