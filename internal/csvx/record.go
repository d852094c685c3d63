package csvx

import (
	"strings"

	"certverify/internal/domain"
)

// clean strips every literal quote character and surrounding whitespace.
// This runs after ParseLine on purpose: the upstream spreadsheets wrap
// values in stray quotes inconsistently, and consumers expect them gone.
func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// BuildRecord assembles one certificate from a data row using the document's
// column mapping. college is the configured fallback for the College field.
// The second return is false when the row is missing a mandatory field and
// must be skipped.
func BuildRecord(row []string, m ColumnMapping, headers []string, college string) (domain.Certificate, bool) {
	cert := domain.Certificate{
		CertificateNumber: clean(m.value(row, FieldCertificateNumber)),
		StudentName:       clean(m.value(row, FieldStudentName)),
		CollegeID:         clean(m.value(row, FieldCollegeID)),
		CourseName:        clean(m.value(row, FieldCourseName)),
		IssueDate:         clean(m.value(row, FieldIssueDate)),
		CompletionDate:    clean(m.value(row, FieldCompletionDate)),
		Grade:             clean(m.value(row, FieldGrade)),
		Instructor:        clean(m.value(row, FieldInstructor)),
		Duration:          clean(m.value(row, FieldDuration)),
		College:           clean(m.value(row, FieldCollege)),
	}

	if extra := collectExtra(row, m, headers); len(extra) > 0 {
		cert.Extra = extra
	}

	cert.ApplyDefaults(college)

	if !cert.Valid() {
		return domain.Certificate{}, false
	}
	return cert, true
}

// collectExtra keeps columns no logical field claimed, keyed by their raw
// trimmed header. Lookup uses these to tolerate header spellings the mapper
// does not know about.
func collectExtra(row []string, m ColumnMapping, headers []string) map[string]string {
	claimed := m.indexSet()
	var extra map[string]string
	for i, h := range headers {
		if claimed[i] || i >= len(row) {
			continue
		}
		key := strings.TrimSpace(h)
		val := clean(row[i])
		if key == "" || val == "" {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[key] = val
	}
	return extra
}
