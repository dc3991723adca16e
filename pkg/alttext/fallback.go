package alttext

import (
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
	"github.com/contextembed/metadata-engine/pkg/prompts"
	"github.com/contextembed/metadata-engine/pkg/schema"
)

const fallbackSubject = "Professional photograph"

// Fallback builds a schema-valid alt-text record from the raw input
// without any model call. The construction is deterministic: the same
// input always yields the same record, and every field lands inside the
// published bounds regardless of how short or long the input is.
func Fallback(in prompts.AltTextInput) *models.AltTextOutput {
	subject := schema.Normalize(in.Subject)
	if subject == "" {
		subject = fallbackSubject
	}

	brand := schema.Normalize(in.BrandName)
	context := schema.Normalize(in.ImageContext)

	var detail strings.Builder
	detail.WriteString(subject)
	if context != "" {
		detail.WriteString(". ")
		detail.WriteString(context)
	}
	if brand != "" {
		detail.WriteString(". Photograph for ")
		detail.WriteString(brand)
		if industry := schema.Normalize(in.Industry); industry != "" {
			detail.WriteString(", a ")
			detail.WriteString(industry)
			detail.WriteString(" business")
		}
	}
	full := detail.String()

	return &models.AltTextOutput{
		AltTextShort:         fit(subject, schema.AltShortMin, schema.AltShortMax, full),
		AltTextAccessibility: fit(full, schema.AltAccessibilityMin, schema.AltAccessibilityMax, filler),
		Caption:              fit(subject, schema.CaptionMin, schema.CaptionMax, full),
		Description:          fit(full, schema.AltDescriptionMin, schema.AltDescriptionMax, filler),
		FocusKeyphrase:       keyphrase(in.Keyphrase, subject),
	}
}

const filler = "The image is shown at its original composition and framing, as captured by the photographer."

// fit pads text with pad (repeating filler afterwards if pad runs short)
// until it reaches min runes, then trims it to max runes on a word
// boundary where possible.
func fit(text string, min, max int, pad string) string {
	s := schema.Normalize(text)
	for len([]rune(s)) < min {
		next := pad
		if next == "" || strings.Contains(s, next) {
			next = filler
		}
		if s == "" {
			s = next
		} else {
			s = s + " " + next
		}
		// Guard against pathological inputs where padding cannot grow.
		if next == filler && strings.HasSuffix(s, filler+" "+filler) {
			break
		}
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := runes[:max]
	for i := len(cut) - 1; i >= min; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimSpace(string(cut))
}

// keyphrase returns the preferred keyphrase when it fits the word limit,
// otherwise the leading words of the subject.
func keyphrase(preferred, subject string) string {
	p := schema.Normalize(preferred)
	if p != "" {
		if words := strings.Fields(p); len(words) <= schema.FocusKeyphraseWords {
			return p
		}
	}
	words := strings.Fields(subject)
	if len(words) > schema.FocusKeyphraseWords {
		words = words[:schema.FocusKeyphraseWords]
	}
	if len(words) == 0 {
		return "professional photograph"
	}
	return strings.Join(words, " ")
}
