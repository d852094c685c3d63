// Package csvx parses loosely structured spreadsheet CSV exports into
// certificate records using header-alias column mapping.
package csvx

import "strings"

// ParseLine splits one CSV line into fields, honoring commas inside quoted
// fields. Quote characters are consumed, not kept; an unterminated quote at
// end of line is tolerated and the last field is still flushed. Escaped ""
// sequences are not unescaped here: record building strips every remaining
// quote character afterwards, interior quotes included.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
