package schema

import "regexp"

// PII detection is regex-based and deliberately coarse: a false positive
// blocks an export that a human can fix, a false negative embeds personal
// data into a distributed file. The phone pattern is known to over-match
// long numeric sequences.
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?(\(\d{2,4}\)[\s.\-]?)?\d{3,4}[\s.\-]\d{3,4}([\s.\-]\d{2,4})?`)
)

// ContainsEmail reports whether the text contains an email address.
func ContainsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ContainsPhoneNumber reports whether the text contains something that
// looks like a phone number.
func ContainsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// checkPII appends hard errors for any PII found in a free-text field.
func checkPII(r *Result, path, text string) {
	if text == "" {
		return
	}
	if ContainsEmail(text) {
		r.addError(path, "must not contain an email address")
	}
	if ContainsPhoneNumber(text) {
		r.addError(path, "must not contain a phone number")
	}
}
