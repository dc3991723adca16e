package models

// AltTextMode selects the optimization target for alt-text generation.
type AltTextMode string

const (
	// AltTextModeSEO optimizes for search visibility.
	AltTextModeSEO AltTextMode = "seo"
	// AltTextModeAccessibility optimizes for screen readers.
	AltTextModeAccessibility AltTextMode = "accessibility"
	// AltTextModeHybrid balances both.
	AltTextModeHybrid AltTextMode = "hybrid"
)

// IsValid returns true if the mode is a known alt-text mode.
func (m AltTextMode) IsValid() bool {
	switch m {
	case AltTextModeSEO, AltTextModeAccessibility, AltTextModeHybrid:
		return true
	default:
		return false
	}
}

// AltTextOutput is the structured alt-text record for one image. One
// instance per generation attempt; a retry supersedes the previous
// instance rather than mutating it.
//
// Character bounds (after whitespace normalization):
//
//	AltTextShort          30-140
//	AltTextAccessibility  60-240
//	Caption               20-200
//	Description           80-900
//	FocusKeyphrase        at most 4 words
type AltTextOutput struct {
	AltTextShort         string `json:"alt_text_short"`
	AltTextAccessibility string `json:"alt_text_accessibility"`
	Caption              string `json:"caption"`
	Description          string `json:"description"`
	FocusKeyphrase       string `json:"focus_keyphrase"`
}
