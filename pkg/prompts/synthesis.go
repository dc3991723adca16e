package prompts

import (
	"fmt"
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// SynthesisSystemMessage frames the synthesis call. The location
// instructions are part of the no-hallucination design: the model is told
// to never assert location and to surface anything location-like only as a
// low-confidence hint, which the engine then refuses to promote.
const SynthesisSystemMessage = `You are a metadata specialist writing IPTC-standard image metadata for a business.
Write factual, specific, search-friendly metadata grounded ONLY in the image analysis and business context provided.
Rules you must never break:
- Never invent facts not present in the analysis or the business context.
- Never include names, email addresses, or phone numbers in any field.
- Never state where the image was taken. If the analysis contains location cues, you may list them under "location_hints" with a confidence value; never place them in headline, description, alt text, or keywords.
Respond with JSON only, no prose.`

// BuildSynthesisPrompt assembles the synthesis request prompt from the
// vision analysis and the confirmed business context. Every profile field
// is folded in; nothing is silently dropped.
func BuildSynthesisPrompt(analysis *models.VisionAnalysis, profile *models.OnboardingProfile, userComment, eventContext string) string {
	var b strings.Builder

	b.WriteString("# Image Metadata Synthesis\n\n")

	writeAnalysisSection(&b, analysis)
	writeBusinessSection(&b, profile)

	if userComment != "" {
		b.WriteString("## Photographer Comment\n\n")
		b.WriteString(userComment)
		b.WriteString("\n\n")
	}
	if eventContext != "" {
		b.WriteString("## Event Context\n\n")
		b.WriteString(eventContext)
		b.WriteString("\n\n")
	}

	writeOutputSection(&b, &profile.Preferences)

	return b.String()
}

func writeAnalysisSection(b *strings.Builder, analysis *models.VisionAnalysis) {
	b.WriteString("## Image Analysis\n\n")
	b.WriteString(fmt.Sprintf("Description: %s\n", analysis.Description))

	if len(analysis.Subjects) > 0 {
		b.WriteString("Subjects:\n")
		for _, s := range analysis.Subjects {
			line := fmt.Sprintf("- %s (%s, %s prominence)", s.Description, s.Type, s.Prominence)
			if s.Count != nil {
				line += fmt.Sprintf(", count %d", *s.Count)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("Scene: %s, %s", analysis.Scene.Type, analysis.Scene.Setting))
	if analysis.Scene.TimeOfDay != "" {
		b.WriteString(", " + analysis.Scene.TimeOfDay)
	}
	if analysis.Scene.Weather != "" {
		b.WriteString(", " + analysis.Scene.Weather)
	}
	b.WriteString("\n")

	writeList(b, "Emotions", analysis.Emotions)
	writeList(b, "Style", analysis.StyleCues)
	writeList(b, "Notable objects", analysis.NotableObjects)
	writeList(b, "Detected text", analysis.DetectedText)
	writeList(b, "Color palette", analysis.ColorPalette)
	if analysis.Composition != "" {
		b.WriteString(fmt.Sprintf("Composition: %s\n", analysis.Composition))
	}
	writeList(b, "Quality issues", analysis.QualityIssues)

	if len(analysis.LocationCues) > 0 {
		b.WriteString("Location cues (UNCONFIRMED, hints only, never assert):\n")
		for _, cue := range analysis.LocationCues {
			b.WriteString(fmt.Sprintf("- %s (confidence %.2f)\n", cue.Hint, cue.Confidence))
		}
	}
	b.WriteString("\n")
}

func writeBusinessSection(b *strings.Builder, profile *models.OnboardingProfile) {
	b.WriteString("## Business Context\n\n")
	b.WriteString(fmt.Sprintf("Brand: %s\n", profile.BrandName))
	b.WriteString(fmt.Sprintf("Industry: %s\n", profile.Industry))
	writeList(b, "Services", profile.Services)
	if profile.TargetAudience != "" {
		b.WriteString(fmt.Sprintf("Target audience: %s\n", profile.TargetAudience))
	}
	writeList(b, "Authority signals", profile.AuthoritySignals)
	if profile.PricingTier != "" {
		b.WriteString(fmt.Sprintf("Pricing tier: %s\n", profile.PricingTier))
	}
	if profile.UniqueValue != "" {
		b.WriteString(fmt.Sprintf("Unique value: %s\n", profile.UniqueValue))
	}
	if profile.Location.ServiceArea != "" {
		b.WriteString(fmt.Sprintf("Service area: %s\n", profile.Location.ServiceArea))
	}
	b.WriteString("\n")
}

func writeOutputSection(b *strings.Builder, prefs *models.OutputPreferences) {
	keywordCount := prefs.KeywordCount
	if keywordCount == 0 {
		keywordCount = 15
	}
	language := prefs.Language
	if language == "" {
		language = "en-US"
	}
	style := prefs.KeywordStyle
	if style == "" {
		style = "mixed"
	}

	b.WriteString("## Output\n\n")
	b.WriteString(fmt.Sprintf("Write in %s. Produce %d keywords in %s style.\n", language, keywordCount, style))
	b.WriteString("Respond with this JSON structure:\n\n")
	b.WriteString(`{
  "headline": "5-200 characters, specific and factual",
  "description": "30-2300 characters, what the image shows and why it matters to this business",
  "alt_text_short": "20-250 characters for the img alt attribute",
  "alt_text_long": "optional extended alt text",
  "keywords": ["exact requested count, no duplicates"],
  "category": "optional IPTC category code (ACE, EBF, HTH, LIF, SCI, SPO, ...)",
  "subject_codes": ["optional IPTC subject codes"],
  "location_hints": [{"field": "city|state|country|sublocation", "value": "...", "confidence": 0.0}]
}
`)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", label, strings.Join(items, ", ")))
}
