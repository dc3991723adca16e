package schema

import (
	"fmt"
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// ValidateAltText checks a structured alt-text record against its character
// bounds. Used by the alt-text generator to accept or reject each
// generation attempt; the deterministic fallback must also pass this check.
func ValidateAltText(o *models.AltTextOutput) Result {
	var r Result

	checkAltBounds(&r, "alt_text_short", o.AltTextShort, AltShortMin, AltShortMax)
	checkAltBounds(&r, "alt_text_accessibility", o.AltTextAccessibility, AltAccessibilityMin, AltAccessibilityMax)
	checkAltBounds(&r, "caption", o.Caption, CaptionMin, CaptionMax)
	checkAltBounds(&r, "description", o.Description, AltDescriptionMin, AltDescriptionMax)

	phrase := Normalize(o.FocusKeyphrase)
	if phrase == "" {
		r.addError("focus_keyphrase", "is required")
	} else if words := len(strings.Fields(phrase)); words > FocusKeyphraseWords {
		r.addError("focus_keyphrase",
			fmt.Sprintf("must be at most %d words (got %d)", FocusKeyphraseWords, words))
	}

	r.Valid = len(r.Errors) == 0
	return r
}

func checkAltBounds(r *Result, path, text string, min, max int) {
	n := NormalizedLen(text)
	if n == 0 {
		r.addError(path, "is required")
		return
	}
	if n < min {
		r.addError(path, fmt.Sprintf("must be at least %d characters (got %d)", min, n))
	}
	if n > max {
		r.addError(path, fmt.Sprintf("must be at most %d characters (got %d)", max, n))
	}
}
