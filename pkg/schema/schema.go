// Package schema enforces the structural and semantic contract of a
// metadata record: field bounds, keyword rules, PII guards, the
// no-hallucination location refinement, and completeness scoring.
//
// Validation failures are values, not errors: every check accumulates into
// a Result so callers can render field-level messages and decide whether to
// block export.
package schema

import "strings"

// Character bounds per free-text field, applied after whitespace
// normalization.
const (
	HeadlineMin    = 5
	HeadlineMax    = 200
	DescriptionMin = 30
	DescriptionMax = 2300
	AltTextMin     = 20
	AltTextMax     = 250

	KeywordsMin   = 8
	KeywordsMax   = 35
	KeywordMaxLen = 64
)

// Alt-text sub-record bounds.
const (
	AltShortMin         = 30
	AltShortMax         = 140
	AltAccessibilityMin = 60
	AltAccessibilityMax = 240
	CaptionMin          = 20
	CaptionMax          = 200
	AltDescriptionMin   = 80
	AltDescriptionMax   = 900
	FocusKeyphraseWords = 4
)

// RequiredTotal is the number of required fields counted by the
// completeness score.
const RequiredTotal = 11

// Issue is a single validation finding, addressed by a dotted path into the
// record (e.g. "descriptive.headline").
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Stats summarizes a record independent of strict validity, so a UI can
// show partial progress on drafts.
type Stats struct {
	RequiredComplete int  `json:"required_complete"`
	RequiredTotal    int  `json:"required_total"`
	KeywordCount     int  `json:"keyword_count"`
	LocationSafe     bool `json:"location_safe"`
}

// Result is the outcome of validating one candidate record. Validating the
// same candidate twice yields an identical Result.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Stats    Stats   `json:"stats"`
}

func (r *Result) addError(path, message string) {
	r.Errors = append(r.Errors, Issue{Path: path, Message: message})
}

func (r *Result) addWarning(path, message string) {
	r.Warnings = append(r.Warnings, Issue{Path: path, Message: message})
}

// Normalize collapses runs of whitespace into single spaces and trims the
// result. All length checks operate on normalized text.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizedLen returns the character count of the normalized text.
func NormalizedLen(s string) int {
	return len([]rune(Normalize(s)))
}
