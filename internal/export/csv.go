// Package export writes normalized certificate snapshots.
package export

import (
	"encoding/csv"
	"io"

	"certverify/internal/domain"
)

// Snapshot column order. Keep it stable: archived snapshots get diffed
// between runs.
var snapshotHeader = []string{
	"CERTIFICATE_NUMBER",
	"STUDENT_NAME",
	"COLLEGE_ID",
	"COURSE_NAME",
	"ISSUE_DATE",
	"COMPLETION_DATE",
	"GRADE",
	"INSTRUCTOR",
	"DURATION",
	"COLLEGE",
}

// WriteCSV writes records as a normalized snapshot: every row fully
// defaulted and cleaned, fixed column order regardless of what the source
// sheet looked like.
func WriteCSV(w io.Writer, records []domain.Certificate) error {
	cw := csv.NewWriter(w)
	// match typical spreadsheet templates
	cw.UseCRLF = true

	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.CertificateNumber,
			r.StudentName,
			r.CollegeID,
			r.CourseName,
			r.IssueDate,
			r.CompletionDate,
			r.Grade,
			r.Instructor,
			r.Duration,
			r.College,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
