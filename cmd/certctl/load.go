package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"certverify/internal/config"
	"certverify/internal/domain"
	"certverify/internal/ingest"
)

// resolveConfig loads the config file/env and applies flag overrides.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if sheetURL != "" {
		cfg.SheetURL = sheetURL
	}
	if college != "" {
		cfg.College = college
	}
	return cfg, nil
}

// loadRecords pulls the full record set from the configured source. A local
// path (no scheme) is read as a file; anything else goes through the URL
// pipeline.
func loadRecords(ctx context.Context, cfg config.Config) ([]domain.Certificate, error) {
	src := strings.TrimSpace(cfg.SheetURL)
	if src == "" {
		return nil, fmt.Errorf("no data source configured: set --url, CERT_SHEET_URL or sheet_url in the config file")
	}

	opts := ingest.Options{
		College:    cfg.College,
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
	}

	if !strings.Contains(src, "://") {
		return ingest.ReadFile(filepath.Clean(src), opts)
	}
	return ingest.ReadStandardCSV(ctx, src, opts)
}
