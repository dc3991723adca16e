package prompts

import "strings"

// VisionSystemMessage frames the image analysis call.
const VisionSystemMessage = `You analyze photographs for a metadata pipeline.
Report only what is visibly present. Do not identify people. Do not state where the photo was taken; if something suggests a place (signage, landmarks, architecture), report it under "location_cues" with a confidence between 0 and 1.
Respond with JSON only, no prose.`

// BuildVisionPrompt builds the analysis request prompt. detailLevel is
// "low", "standard", or "high"; higher levels ask for more granular
// subject and composition detail.
func BuildVisionPrompt(detailLevel string) string {
	var b strings.Builder

	b.WriteString("Analyze the attached image and respond with this JSON structure:\n\n")
	b.WriteString(`{
  "description": "2-4 sentence factual description",
  "subjects": [{"type": "person|animal|object|food|building|vehicle|nature", "description": "...", "prominence": "primary|secondary|background", "count": 1}],
  "scene": {"type": "indoor|outdoor|studio", "setting": "...", "time_of_day": "", "weather": ""},
  "emotions": [], "style_cues": [], "notable_objects": [], "detected_text": [],
  "quality_issues": [], "color_palette": [], "composition": "",
  "location_cues": [{"hint": "...", "confidence": 0.0}]
}
`)

	switch detailLevel {
	case "high":
		b.WriteString("\nBe exhaustive: include every distinct subject and object, exact detected text, and detailed composition notes.\n")
	case "low":
		b.WriteString("\nKeep it brief: primary subject, scene, and dominant colors only.\n")
	}

	return b.String()
}
