package csvx

import "strings"

// Field names the logical certificate attributes, independent of whatever
// header text a given spreadsheet uses.
type Field string

const (
	FieldCertificateNumber Field = "certificateNumber"
	FieldStudentName       Field = "studentName"
	FieldCollegeID         Field = "collegeId"
	FieldCourseName        Field = "courseName"
	FieldIssueDate         Field = "issueDate"
	FieldCompletionDate    Field = "completionDate"
	FieldGrade             Field = "grade"
	FieldInstructor        Field = "instructor"
	FieldDuration          Field = "duration"
	FieldCollege           Field = "college"
)

// fieldOrder is the resolution order for building a mapping. It matters:
// generic aliases like "id" or "number" can claim a header, and which field
// gets there first is part of the parsing policy.
var fieldOrder = []Field{
	FieldCertificateNumber,
	FieldStudentName,
	FieldCollegeID,
	FieldCourseName,
	FieldIssueDate,
	FieldCompletionDate,
	FieldGrade,
	FieldInstructor,
	FieldDuration,
	FieldCollege,
}

// fieldAliases lists the accepted header substrings per logical field, in
// priority order. The ordering is behavioral, not cosmetic: the first alias
// that matches any header wins, and within that alias the first matching
// header index is used. Do not reorder without revisiting the fixtures.
var fieldAliases = map[Field][]string{
	FieldCertificateNumber: {"certificate number", "cert number", "certificate_number", "certno", "cert_no", "number"},
	FieldStudentName:       {"student name", "name", "student_name", "full name", "fullname"},
	FieldCollegeID:         {"college id", "student id", "id", "college_id", "student_id", "roll number", "rollno"},
	FieldCourseName:        {"course name", "course", "course_name", "subject", "program"},
	FieldIssueDate:         {"issue date", "date", "issue_date", "issued date"},
	FieldCompletionDate:    {"completion date", "complete date", "completion_date", "end date"},
	FieldGrade:             {"grade", "marks", "score", "result"},
	FieldInstructor:        {"instructor", "teacher", "faculty", "mentor"},
	FieldDuration:          {"duration", "period", "length"},
	FieldCollege:           {"college", "institution", "university", "school", "institute", "college name", "institution name"},
}

// ColumnMapping resolves each logical field to a column index in the source
// document, -1 when no header matched. Built once from the header row and
// reused for every data row.
type ColumnMapping map[Field]int

// BuildColumnMapping resolves every logical field against the header row.
// Headers are lowercased and trimmed before matching. A header matches an
// alias when either contains the other as a substring or they are equal.
func BuildColumnMapping(headers []string) ColumnMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := make(ColumnMapping, len(fieldOrder))
	for _, f := range fieldOrder {
		m[f] = findColumn(normalized, fieldAliases[f])
	}
	return m
}

// findColumn returns the index bound by the first alias that matches any
// header; within an alias the lowest header index wins.
func findColumn(headers []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range headers {
			if h == "" {
				continue
			}
			if strings.Contains(h, alias) || strings.Contains(alias, h) {
				return i
			}
		}
	}
	return -1
}

// Mapped reports whether the field resolved to a column.
func (m ColumnMapping) Mapped(f Field) bool {
	idx, ok := m[f]
	return ok && idx >= 0
}

// value pulls the field's cell out of row, or "" when the field is unmapped
// or the row is short.
func (m ColumnMapping) value(row []string, f Field) string {
	idx, ok := m[f]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// indexSet returns the set of column indexes claimed by any logical field.
// Columns outside the set are carried through as Extra values.
func (m ColumnMapping) indexSet() map[int]bool {
	set := make(map[int]bool, len(m))
	for _, idx := range m {
		if idx >= 0 {
			set[idx] = true
		}
	}
	return set
}
