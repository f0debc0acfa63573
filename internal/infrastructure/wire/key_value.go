package wire

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseKeyValue splits a body like "a=1&b=two" into URL-decoded pairs.
// Pieces are split on the first '='; a later duplicate key wins. Text that
// is not valid URL encoding, like "100% of limit", is kept as sent.
func ParseKeyValue(body []byte) (map[string]string, error) {
	if isBlank(body) {
		return nil, ErrEmptyBody
	}
	out := map[string]string{}
	for _, piece := range strings.Split(strings.TrimSpace(string(body)), "&") {
		if piece == "" {
			continue
		}
		k, v, _ := strings.Cut(piece, "=")
		key, val := unescape(k), unescape(v)
		if key == "" {
			return nil, fmt.Errorf("empty key in %q", piece)
		}
		out[key] = val
	}
	return out, nil
}

func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return s
}

// IntField parses fields[key] as an integer, or returns sentinel when the
// key is missing or not numeric.
func IntField(fields map[string]string, key string, sentinel int) int {
	v, ok := fields[key]
	if !ok {
		return sentinel
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return sentinel
	}
	return n
}
