package domain

import "strings"

// Certificate is the canonical representation of one issued certificate
// inside this service. Every ingestion source (Google Sheets CSV export,
// raw CSV, xlsx workbook) maps into this model, and every consumer
// (lookup, HTTP API, snapshot export) reads from it.
type Certificate struct {
	CertificateNumber string `json:"certificateNumber"`
	StudentName       string `json:"studentName"`
	CollegeID         string `json:"collegeId,omitempty"`
	CourseName        string `json:"courseName"`
	IssueDate         string `json:"issueDate,omitempty"` // kept as the source's string, no date parsing
	CompletionDate    string `json:"completionDate,omitempty"`
	Grade             string `json:"grade,omitempty"`
	Instructor        string `json:"instructor,omitempty"`
	Duration          string `json:"duration,omitempty"`
	College           string `json:"college,omitempty"`

	// Extra holds columns the mapper did not recognize, keyed by the raw
	// trimmed header. Lookup consults it to tolerate naming drift upstream.
	Extra map[string]string `json:"extra,omitempty"`
}

// Defaults applied when a source column is absent or empty.
const (
	DefaultGrade      = "A+"
	DefaultInstructor = "Instructor"
	DefaultDuration   = "8 weeks"
)

// ApplyDefaults fills the optional fields that have documented fallbacks.
// college is the configured website/company name supplied by the caller.
func (c *Certificate) ApplyDefaults(college string) {
	if c.Grade == "" {
		c.Grade = DefaultGrade
	}
	if c.Instructor == "" {
		c.Instructor = DefaultInstructor
	}
	if c.Duration == "" {
		c.Duration = DefaultDuration
	}
	if c.College == "" {
		c.College = college
	}
	if c.CompletionDate == "" {
		c.CompletionDate = c.IssueDate
	}
}

// Valid reports whether the record carries the three mandatory fields.
// Invalid records are dropped at build time, never stored.
func (c Certificate) Valid() bool {
	return strings.TrimSpace(c.CertificateNumber) != "" &&
		strings.TrimSpace(c.StudentName) != "" &&
		strings.TrimSpace(c.CourseName) != ""
}
