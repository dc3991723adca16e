package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Model output rarely arrives as bare JSON: reasoning models prepend
// <think> blocks, chat models wrap payloads in markdown fences or add
// prose around them. Extraction strips the noise and pulls the first
// balanced JSON value out of whatever is left.

var (
	leadingThinkPattern = regexp.MustCompile(`(?s)^\s*<think>.*?</think>\s*`)
	codeFencePattern    = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
)

// ExtractJSON extracts the first valid JSON object or array from a model
// response that may contain think tags, markdown code fences, or
// surrounding prose.
func ExtractJSON(response string) (string, error) {
	cleaned := leadingThinkPattern.ReplaceAllString(response, "")

	// Prefer fenced content when present; models that fence usually put
	// the whole payload inside.
	if m := codeFencePattern.FindStringSubmatch(cleaned); len(m) == 2 {
		cleaned = m[1]
	}

	objStart := strings.IndexByte(cleaned, '{')
	arrStart := strings.IndexByte(cleaned, '[')

	if objStart >= 0 && (arrStart < 0 || objStart < arrStart) {
		if candidate, ok := balancedSlice(cleaned, '{', '}'); ok && json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}
	if arrStart >= 0 {
		if candidate, ok := balancedSlice(cleaned, '[', ']'); ok && json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	trimmed := strings.TrimSpace(cleaned)
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	return "", fmt.Errorf("no valid JSON found in response")
}

// balancedSlice returns the first balanced bracket structure starting with
// open, tracking string literals and escapes so braces inside strings don't
// confuse the depth count.
func balancedSlice(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// ParseJSONResponse extracts JSON from a model response and unmarshals it
// into T. Extraction failures surface as PARSE_ERROR.
func ParseJSONResponse[T any](response string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return result, NewError(CodeParseError, "response is not JSON", false, err)
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, NewError(CodeParseError, "unmarshal JSON", false, err)
	}

	return result, nil
}
