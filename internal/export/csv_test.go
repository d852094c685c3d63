package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"certverify/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	records := []domain.Certificate{
		{
			CertificateNumber: "CERT-001",
			StudentName:       "Doe, John",
			CollegeID:         "STU-1",
			CourseName:        "Go Basics",
			IssueDate:         "2024-01-10",
			CompletionDate:    "2024-01-10",
			Grade:             "A+",
			Instructor:        "Instructor",
			Duration:          "8 weeks",
			College:           "Acme Institute",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "CERTIFICATE_NUMBER,STUDENT_NAME,") {
		t.Errorf("Unexpected header: %q", out)
	}
	if !strings.Contains(out, "\r\n") {
		t.Error("Expected CRLF line endings")
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Output did not re-parse as CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d rows", len(rows))
	}
	if rows[1][1] != "Doe, John" {
		t.Errorf("Expected comma-containing name quoted and preserved, got %q", rows[1][1])
	}
	if len(rows[0]) != 10 {
		t.Errorf("Expected 10 columns, got %d", len(rows[0]))
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\r\n")
	if len(lines) != 1 {
		t.Errorf("Expected only the header row, got %d lines", len(lines))
	}
}
