// Package sample holds the built-in fallback dataset. Callers substitute it
// when the remote source cannot be loaded so the verification surface is
// never completely empty; the ingestion pipeline itself never falls back.
package sample

import "certverify/internal/domain"

// Certificates returns a fresh copy of the built-in dataset. college is the
// configured website/company name used for the College field.
func Certificates(college string) []domain.Certificate {
	records := []domain.Certificate{
		{
			CertificateNumber: "CERT-2024-001",
			StudentName:       "Aarav Sharma",
			CollegeID:         "STU-1001",
			CourseName:        "Full Stack Web Development",
			IssueDate:         "2024-01-15",
			CompletionDate:    "2024-01-15",
			Grade:             "A+",
			Instructor:        "R. Verma",
			Duration:          "8 weeks",
		},
		{
			CertificateNumber: "CERT-2024-002",
			StudentName:       "Priya Patel",
			CollegeID:         "STU-1002",
			CourseName:        "Data Science Fundamentals",
			IssueDate:         "2024-02-20",
			CompletionDate:    "2024-04-18",
			Grade:             "A",
			Instructor:        "S. Iyer",
			Duration:          "12 weeks",
		},
		{
			CertificateNumber: "CERT-2024-003",
			StudentName:       "Rohan Gupta",
			CollegeID:         "STU-1003",
			CourseName:        "Digital Marketing",
			IssueDate:         "2024-03-05",
			CompletionDate:    "2024-03-05",
			Grade:             "A+",
			Instructor:        "Instructor",
			Duration:          "8 weeks",
		},
	}

	for i := range records {
		if records[i].College == "" {
			records[i].College = college
		}
	}
	return records
}
