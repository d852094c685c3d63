package csvx

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"certverify/internal/domain"
)

// ErrNoValidRecords reports a document in which every data row failed
// validation. Callers need the distinction: an empty result set would be
// indistinguishable from "nothing loaded".
var ErrNoValidRecords = errors.New("no valid certificate records found, check the data format")

// Options tunes document parsing.
type Options struct {
	// College is the website/company name used when the source has no
	// college column. Supplied by the caller, never read from globals.
	College string
}

// ParseDocument turns raw CSV text into validated certificate records.
// Row 0 is the header row; its column mapping is computed once and reused
// for every data row. Rows missing a mandatory field are logged and
// skipped; a document yielding zero records fails with ErrNoValidRecords.
func ParseDocument(text string, opts Options) ([]domain.Certificate, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("csv document is empty")
	}

	headers := ParseLine(lines[0])
	mapping := BuildColumnMapping(headers)

	if len(lines) == 1 {
		return nil, ErrNoValidRecords
	}

	records := make([]domain.Certificate, 0, len(lines)-1)
	for n, line := range lines[1:] {
		row := ParseLine(line)
		cert, ok := BuildRecord(row, mapping, headers, opts.College)
		if !ok {
			slog.Warn("skipping row with missing mandatory fields", "row", n+2)
			continue
		}
		records = append(records, cert)
	}

	if len(records) == 0 {
		return nil, ErrNoValidRecords
	}
	return records, nil
}

// splitLines tolerates CRLF endings and drops blank lines, which Sheets
// exports occasionally append at the end.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
