// Package mapper is the single translation layer between API payloads
// (camelCase, loosely typed) and storage records (snake_case columns,
// JSON-encoded text for nested structures). Every storage-facing operation
// goes through the types in this package instead of re-deriving field
// conversions per endpoint.
package mapper

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSONText holds a nested structure destined for a text column. Values that
// arrive as JSON objects or arrays are serialized; values that are already
// strings pass through untouched, which keeps the field safe against
// double-encoding.
type JSONText string

// UnmarshalJSON accepts either a JSON string or any other JSON value.
func (t *JSONText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*t = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = JSONText(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*t = JSONText(buf.String())
	return nil
}

// String returns the stored text form.
func (t JSONText) String() string {
	return string(t)
}

// StringList is a list of strings that tolerates two inbound encodings: a
// JSON array of strings, or a single comma-separated string ("JS,SQL").
// It always marshals back out as an array, order preserved.
type StringList []string

// UnmarshalJSON implements the tolerant decode.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}
	*l = SplitList(s)
	return nil
}

// SplitList splits a comma-separated value into trimmed, non-empty entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
