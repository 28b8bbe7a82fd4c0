// Package csvutil parses the published spreadsheet CSV exports. The
// exports are plain single-line rows; encoding/csv is not used because the
// source regularly produces rows with unbalanced quotes that must degrade
// instead of erroring, and multi-line quoted fields never occur.
package csvutil

import "strings"

// ParseRow splits one CSV line into its fields. Fields are separated by
// commas outside quoted spans; a doubled quote inside a quoted span is a
// literal quote. Malformed quoting never fails: a stray quote simply
// toggles the span.
func ParseRow(row string) []string {
	result := []string{}
	var field strings.Builder
	inQuotes := false
	for i := 0; i < len(row); i++ {
		char := row[i]
		switch {
		case char == '"':
			if inQuotes && i+1 < len(row) && row[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case char == ',' && !inQuotes:
			result = append(result, field.String())
			field.Reset()
		default:
			field.WriteByte(char)
		}
	}
	result = append(result, field.String())
	return result
}

// Rows splits a CSV body into data lines, dropping the header line and any
// blank lines.
func Rows(body string) []string {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) <= 1 {
		return nil
	}
	rows := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// Field returns the trimmed field at index i, or "" when the row is too
// short. Sheet columns are positional; missing trailing columns default to
// empty.
func Field(columns []string, i int) string {
	if i < 0 || i >= len(columns) {
		return ""
	}
	return strings.TrimSpace(columns[i])
}
