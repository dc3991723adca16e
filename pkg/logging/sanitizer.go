// Package logging provides redaction helpers for log output. The engine
// handles user brand data and model output that may contain personal
// information; nothing personally identifying should reach log storage.
package logging

import "regexp"

// RedactedText replaces sensitive spans in logged text.
const RedactedText = "[REDACTED]"

// MaxSnippetLength bounds how much model output is quoted in a log line.
const MaxSnippetLength = 200

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern  = regexp.MustCompile(`\+?\d{1,3}[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]\d{3,4}`)
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|bearer|token)[=:\s]+[A-Za-z0-9\-_.]{16,}`)
)

// RedactPII strips emails, phone numbers, and credentials from text before
// it is logged.
func RedactPII(s string) string {
	if s == "" {
		return ""
	}
	out := emailPattern.ReplaceAllString(s, RedactedText)
	out = phonePattern.ReplaceAllString(out, RedactedText)
	out = apiKeyPattern.ReplaceAllString(out, "${1}="+RedactedText)
	return out
}

// Snippet returns a redacted, length-bounded view of model output suitable
// for a log field.
func Snippet(s string) string {
	redacted := RedactPII(s)
	if len(redacted) <= MaxSnippetLength {
		return redacted
	}
	return redacted[:MaxSnippetLength] + "..."
}
