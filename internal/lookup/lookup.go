// Package lookup answers certificate-number queries over an in-memory
// record set.
package lookup

import (
	"strings"

	"certverify/internal/domain"
)

// extraKeys are header spellings checked in a record's Extra map when the
// canonical field does not match. They tolerate sources whose certificate
// column evaded the mapper (renamed exports, re-keyed sheets).
var extraKeys = []string{
	"certificateNumber",
	"CertificateNumber",
	"Certificate Number",
	"certificate_number",
	"certNumber",
	"cert_number",
	"id",
	"ID",
	"number",
	"Number",
}

// ByNumber finds the first record whose certificate number equals query,
// case-insensitively and exactly (never substring). A miss is a normal
// outcome, reported as ok=false.
func ByNumber(records []domain.Certificate, query string) (*domain.Certificate, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}

	for i := range records {
		if matches(&records[i], q) {
			return &records[i], true
		}
	}
	return nil, false
}

func matches(c *domain.Certificate, q string) bool {
	if strings.ToLower(strings.TrimSpace(c.CertificateNumber)) == q {
		return true
	}
	for _, key := range extraKeys {
		if v, ok := c.Extra[key]; ok {
			if strings.ToLower(strings.TrimSpace(v)) == q {
				return true
			}
		}
	}
	return false
}
