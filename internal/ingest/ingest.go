// Package ingest fetches spreadsheet exports and turns them into certificate
// records. Each place records can come from (a sheet URL, a local file) is a
// Source; the verification service refreshes from whichever source it was
// configured with.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"certverify/internal/csvx"
	"certverify/internal/domain"
	"certverify/internal/httpx"
	"certverify/internal/sheeturl"
)

// Source loads a full certificate record set.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Certificate, error)
}

// Options configure ingestion.
type Options struct {
	// College is the website/company name fallback for records whose
	// source has no college column.
	College string
	// HTTPClient overrides the default client (tests, custom timeouts).
	HTTPClient *http.Client
	// Retry overrides the default retry schedule.
	Retry httpx.RetryConfig
}

func (o Options) client() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

// ReadStandardCSV is the primary entry point: normalize the URL, fetch it,
// parse the document. It rejects with a descriptive error on transport
// failure, non-2xx status, or a document with no valid records.
func ReadStandardCSV(ctx context.Context, url string, opts Options) ([]domain.Certificate, error) {
	csvURL := sheeturl.ConvertToCSV(url)
	if csvURL == "" {
		return nil, fmt.Errorf("no data source url configured")
	}

	text, err := httpx.FetchText(ctx, opts.client(), csvURL, opts.Retry)
	if err != nil {
		return nil, fmt.Errorf("fetch certificate data: %w", err)
	}

	records, err := csvx.ParseDocument(text, csvx.Options{College: opts.College})
	if err != nil {
		return nil, fmt.Errorf("parse certificate data: %w", err)
	}
	return records, nil
}

// SheetSource loads records from a spreadsheet URL (Google Sheets links are
// rewritten to their CSV export form on every load).
type SheetSource struct {
	URL  string
	Opts Options
}

func (s SheetSource) Name() string { return "sheet" }

func (s SheetSource) Load(ctx context.Context) ([]domain.Certificate, error) {
	return ReadStandardCSV(ctx, s.URL, s.Opts)
}
