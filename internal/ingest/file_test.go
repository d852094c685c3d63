package ingest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "certs.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileXLSX(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		{"Certificate Number", "Student Name", "Course", "Grade"},
		{"CERT-001", "Jane Doe", "Go Basics", ""},
		{"CERT-002", "John Roe", "Advanced Go", "A"},
	})

	records, err := ReadFile(path, Options{College: "Acme Institute"})
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Grade != "A+" {
		t.Errorf("Expected empty grade to default to 'A+', got '%s'", records[0].Grade)
	}
	if records[1].Grade != "A" {
		t.Errorf("Expected Grade 'A', got '%s'", records[1].Grade)
	}
}

func TestReadFileXLSXHeaderOnly(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		{"Certificate Number", "Student Name", "Course"},
	})

	if _, err := ReadFile(path, Options{}); err == nil {
		t.Fatal("Expected error for header-only workbook")
	}
}
