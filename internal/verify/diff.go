package verify

import (
	"strings"

	"certverify/internal/domain"
)

// diff compares the previously served set with a freshly loaded one, keyed
// by certificate number. It only feeds refresh reporting; the new set always
// replaces the old one wholesale.
func diff(old, fresh []domain.Certificate) RefreshStats {
	oldByNumber := keySet(old)
	freshByNumber := keySet(fresh)

	stats := RefreshStats{Total: len(fresh)}
	for k := range freshByNumber {
		if !oldByNumber[k] {
			stats.Added++
		}
	}
	for k := range oldByNumber {
		if !freshByNumber[k] {
			stats.Removed++
		}
	}
	return stats
}

func keySet(records []domain.Certificate) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		k := strings.ToLower(strings.TrimSpace(r.CertificateNumber))
		if k == "" {
			continue
		}
		set[k] = true
	}
	return set
}
