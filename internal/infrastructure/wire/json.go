package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"merchant_gateway/internal/domain/entities"
)

// DecodeJSON decodes body into a typed response and into a generic map
// kept for diagnostics.
func DecodeJSON[T any](body []byte) (T, entities.RawResponse, error) {
	var typed T
	if isBlank(body) {
		return typed, nil, ErrEmptyBody
	}
	if err := json.Unmarshal(body, &typed); err != nil {
		return typed, nil, fmt.Errorf("decode json: %w", err)
	}
	raw := entities.RawResponse{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		// Valid JSON that is not an object, e.g. a bare array.
		return typed, nil, fmt.Errorf("decode json object: %w", err)
	}
	return typed, raw, nil
}

// Lookup walks nested objects by key. A missing key or a non-object along
// the path reports false.
func Lookup(raw map[string]any, path ...string) (any, bool) {
	var cur any = raw
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// LookupString is Lookup rendered as a string; absent or null yields "".
func LookupString(raw map[string]any, path ...string) string {
	v, ok := Lookup(raw, path...)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FlexString accepts a JSON string, number, bool or null. Processors are
// inconsistent about quoting ids and codes.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexString(v)
	case strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		return fmt.Errorf("expected scalar, got %s", s)
	default:
		*f = FlexString(s)
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

// Int reports false for blank or non-integer values.
func (f FlexString) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return n, true
}
