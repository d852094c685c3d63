// certserver serves the verification API for the public site and the admin
// back office. On startup it loads the configured sheet once; a failed first
// load degrades to the built-in sample set instead of an empty catalog.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"certverify/internal/api"
	"certverify/internal/config"
	"certverify/internal/ingest"
	"certverify/internal/sample"
	"certverify/internal/verify"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.Parse()

	setupLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	src := ingest.SheetSource{
		URL: cfg.SheetURL,
		Opts: ingest.Options{
			College:    cfg.College,
			HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		},
	}

	svc := verify.New(src, sample.Certificates(cfg.College))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+10*time.Second)
	if _, err := svc.Refresh(ctx); err != nil {
		slog.Warn("initial load failed, serving degraded data", "error", err)
	}
	cancel()

	srv := api.New(svc, cfg.AllowedOrigins)

	slog.Info("listening", "addr", cfg.ListenAddr)
	if err := srv.Router().Run(cfg.ListenAddr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
