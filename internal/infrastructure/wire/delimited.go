package wire

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
)

// ParseDelimited splits a single comma-separated record and strips the
// double quotes wrapping each field. Quoted fields may contain commas.
func ParseDelimited(body []byte) ([]string, error) {
	if isBlank(body) {
		return nil, ErrEmptyBody
	}
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(string(body))))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read delimited record: %w", err)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// Field returns fields[i] or "" when the record is shorter.
func Field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

var trailingCode = regexp.MustCompile(`\(([A-Za-z0-9]{1,2})\)\s*$`)

// TrailingCode extracts "X" from "AVS Match 9 Digit Zip and Address (X)".
func TrailingCode(description string) string {
	m := trailingCode.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}
