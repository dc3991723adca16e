package prompts

import (
	"fmt"
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// AltTextSystemMessage frames the alt-text generation call.
const AltTextSystemMessage = `You write image alt text and captions for business websites.
Be concrete and literal about what the image shows. No marketing filler, no "image of"/"picture of" prefixes.
Never include names, email addresses, phone numbers, or locations.
Respond with JSON only, no prose.`

// AltTextInput carries the image context used to build an alt-text prompt.
type AltTextInput struct {
	Subject      string // what the image shows, from the vision analysis
	ImageContext string // free-text context (page, usage, event)
	BrandName    string
	Industry     string
	Keyphrase    string // optional preferred focus keyphrase
}

// BuildAltTextPrompt builds the mode-specific alt-text prompt.
func BuildAltTextPrompt(in AltTextInput, mode models.AltTextMode) string {
	var b strings.Builder

	b.WriteString("# Alt Text Generation\n\n")
	b.WriteString(fmt.Sprintf("Image shows: %s\n", in.Subject))
	if in.ImageContext != "" {
		b.WriteString(fmt.Sprintf("Context: %s\n", in.ImageContext))
	}
	if in.BrandName != "" {
		b.WriteString(fmt.Sprintf("Brand: %s (%s)\n", in.BrandName, in.Industry))
	}
	if in.Keyphrase != "" {
		b.WriteString(fmt.Sprintf("Preferred focus keyphrase: %s\n", in.Keyphrase))
	}
	b.WriteString("\n")

	switch mode {
	case models.AltTextModeSEO:
		b.WriteString("Optimize for search: lead with the focus keyphrase, describe the subject the way a customer would search for it.\n")
	case models.AltTextModeAccessibility:
		b.WriteString("Optimize for screen readers: describe what matters to someone who cannot see the image, in natural sentence order. Search phrasing is secondary.\n")
	default:
		b.WriteString("Balance search phrasing with screen-reader clarity: natural sentences that still contain the focus keyphrase.\n")
	}

	b.WriteString("\nRespond with this JSON structure:\n\n")
	b.WriteString(altTextFormat)
	return b.String()
}

const altTextFormat = `{
  "alt_text_short": "30-140 characters",
  "alt_text_accessibility": "60-240 characters",
  "caption": "20-200 characters",
  "description": "80-900 characters",
  "focus_keyphrase": "at most 4 words"
}
`

// AltTextCorrectionBlock is appended to the prompt on the retry attempt.
// It restates the exact character bounds because out-of-bounds field
// lengths are the dominant first-attempt failure.
func AltTextCorrectionBlock() string {
	return `
IMPORTANT: your previous answer was rejected. Follow these exact bounds, counting characters after whitespace is collapsed:
- alt_text_short: 30 to 140 characters
- alt_text_accessibility: 60 to 240 characters
- caption: 20 to 200 characters
- description: 80 to 900 characters
- focus_keyphrase: 4 words maximum
Every field is required. Respond with only the JSON object.`
}
