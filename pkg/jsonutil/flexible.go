// Package jsonutil tolerates the scalar and shape drift common in LLM JSON
// output: numbers where strings were asked for, a bare string where an
// array was asked for, stringified numbers.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString converts a raw JSON value to a string, accepting strings,
// numbers, and booleans. Returns "" for null or empty input.
func FlexibleString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return strings.Trim(string(raw), `"`)
}

// FlexibleStringSlice converts a raw JSON value to a string slice,
// accepting arrays of flexible scalars, a single scalar, or a
// comma-separated string ("a, b, c" -> ["a","b","c"]).
func FlexibleStringSlice(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(FlexibleString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	scalar := strings.TrimSpace(FlexibleString(raw))
	if scalar == "" {
		return nil
	}
	if strings.Contains(scalar, ",") {
		parts := strings.Split(scalar, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{scalar}
}

// FlexibleFloat converts a raw JSON value to a float64, accepting numbers
// and numeric strings.
func FlexibleFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("empty value")
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	return 0, fmt.Errorf("value %q is not numeric", string(raw))
}
