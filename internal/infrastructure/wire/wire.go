// Package wire implements the response formats spoken by processor APIs:
// ampersand key=value pairs, comma-quoted positional fields and JSON.
package wire

import (
	"errors"
	"regexp"
	"strings"
)

const (
	FormatKeyValue  = "key_value"
	FormatDelimited = "delimited"
	FormatJSON      = "json"
)

var ErrEmptyBody = errors.New("empty response body")

const filtered = "[FILTERED]"

// Redact replaces the second capture group of every rule match with a
// placeholder, keeping the first group (the field name) intact.
func Redact(transcript string, rules ...*regexp.Regexp) string {
	for _, re := range rules {
		transcript = re.ReplaceAllString(transcript, "${1}"+filtered)
	}
	return transcript
}

// FormRule matches a form-encoded field, e.g. FormRule("ccnumber"). The
// field may open any line of a transcript.
func FormRule(field string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)((?:^|&)` + regexp.QuoteMeta(field) + `=)([^&\s]*)`)
}

// JSONRule matches a JSON string or number field, e.g. JSONRule("number").
func JSONRule(field string) *regexp.Regexp {
	return regexp.MustCompile(`("` + regexp.QuoteMeta(field) + `"\s*:\s*"?)([^",}\s]*)`)
}

// HeaderRule matches an HTTP header line in a transcript.
func HeaderRule(header string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(` + regexp.QuoteMeta(header) + `:\s*)(\S.*)`)
}

func isBlank(body []byte) bool {
	return strings.TrimSpace(string(body)) == ""
}
