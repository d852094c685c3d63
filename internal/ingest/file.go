package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"certverify/internal/csvx"
	"certverify/internal/domain"
)

// FileSource loads records from a local .csv or .xlsx export, the path the
// back office uses when an administrator uploads a file instead of linking
// a sheet.
type FileSource struct {
	Path string
	Opts Options
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Load(ctx context.Context) ([]domain.Certificate, error) {
	return ReadFile(s.Path, s.Opts)
}

// ReadFile parses a local spreadsheet export. The format is picked by
// extension; xlsx workbooks are funneled through the same column mapper and
// record builder as CSV text.
func ReadFile(path string, opts Options) ([]domain.Certificate, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readWorkbook(path, opts)
	case ".csv", ".txt", "":
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read csv file %s: %w", path, err)
		}
		records, err := csvx.ParseDocument(string(text), csvx.Options{College: opts.College})
		if err != nil {
			return nil, fmt.Errorf("parse csv file %s: %w", path, err)
		}
		return records, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", path)
}

// readWorkbook reads the first sheet of an xlsx workbook.
func readWorkbook(path string, opts Options) ([]domain.Certificate, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return RecordsFromRows(rows, opts)
}

// RecordsFromRows applies the header mapping pipeline to already-tokenized
// rows (row 0 is the header row).
func RecordsFromRows(rows [][]string, opts Options) ([]domain.Certificate, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	headers := rows[0]
	mapping := csvx.BuildColumnMapping(headers)

	records := make([]domain.Certificate, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cert, ok := csvx.BuildRecord(row, mapping, headers, opts.College)
		if !ok {
			continue
		}
		records = append(records, cert)
	}

	if len(records) == 0 {
		return nil, csvx.ErrNoValidRecords
	}
	return records, nil
}
