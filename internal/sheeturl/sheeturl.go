// Package sheeturl classifies spreadsheet URLs and rewrites Google Sheets
// "edit" links into stable CSV export links.
package sheeturl

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

var (
	spreadsheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	gidRe           = regexp.MustCompile(`[#&?]gid=(\d+)`)
)

// ConvertToCSV rewrites url into a directly fetchable CSV source where it
// knows how, and passes everything else through unchanged. It never fails:
// an unconvertible URL comes back as-is so the caller always gets a string.
func ConvertToCSV(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	if strings.Contains(url, "docs.google.com/spreadsheets") {
		return convertGoogleSheets(url)
	}

	if strings.HasSuffix(url, ".csv") {
		return url
	}

	// OneDrive share links have no stable CSV export form.
	if strings.Contains(url, "onedrive") || strings.Contains(url, "1drv.ms") {
		return url
	}

	return url
}

// convertGoogleSheets turns a Sheets edit link into its export?format=csv
// form. Already-converted links are returned unchanged so the rewrite is
// idempotent. A link with no extractable spreadsheet ID is logged and
// returned unchanged.
func convertGoogleSheets(url string) string {
	if strings.Contains(url, "/export?format=csv") {
		return url
	}

	m := spreadsheetIDRe.FindStringSubmatch(url)
	if m == nil {
		slog.Warn("could not extract spreadsheet id, keeping url as-is", "url", url)
		return url
	}
	id := m[1]

	gid := "0"
	if g := gidRe.FindStringSubmatch(url); g != nil {
		gid = g[1]
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", id, gid)
}

// IsValidCSVSource reports whether url looks directly fetchable as CSV.
func IsValidCSVSource(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}

	switch {
	case strings.Contains(url, "docs.google.com/spreadsheets") && strings.Contains(url, "export?format=csv"):
		return true
	case strings.HasSuffix(url, ".csv"):
		return true
	case strings.Contains(url, "raw.githubusercontent.com") && strings.Contains(url, ".csv"):
		return true
	}
	return false
}

// ConversionInstructions returns advisory text for the admin form describing
// how (or whether) the given URL can be used as a CSV source.
func ConversionInstructions(url string) string {
	url = strings.TrimSpace(url)

	switch {
	case url == "":
		return "Paste a spreadsheet link to check whether it can be used as a data source."
	case strings.Contains(url, "docs.google.com/spreadsheets") && strings.Contains(url, "export?format=csv"):
		return "This is already a Google Sheets CSV export link and can be used directly."
	case strings.Contains(url, "docs.google.com/spreadsheets"):
		return "Google Sheets edit link detected. It will be converted to a CSV export link automatically."
	case strings.HasSuffix(url, ".csv"):
		return "Direct CSV link detected. It can be used as-is."
	case strings.Contains(url, "onedrive") || strings.Contains(url, "1drv.ms"):
		return "OneDrive links are not supported. Download the sheet as CSV and host it elsewhere, or use Google Sheets."
	}
	return "Unrecognized link. Use a Google Sheets share link or a direct .csv URL."
}
