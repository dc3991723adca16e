// Package models contains domain types for the ContextEmbed metadata engine.
package models

// VisionAnalysis is the machine-produced description of an image as returned
// by a vision provider. It is input only: once produced it is never mutated
// by the synthesis pipeline.
type VisionAnalysis struct {
	Subjects       []Subject     `json:"subjects"`
	Scene          Scene         `json:"scene"`
	Emotions       []string      `json:"emotions,omitempty"`
	StyleCues      []string      `json:"style_cues,omitempty"`
	LocationCues   []LocationCue `json:"location_cues,omitempty"`
	NotableObjects []string      `json:"notable_objects,omitempty"`
	DetectedText   []string      `json:"detected_text,omitempty"`
	QualityIssues  []string      `json:"quality_issues,omitempty"`
	ColorPalette   []string      `json:"color_palette,omitempty"`
	Composition    string        `json:"composition,omitempty"`
	Description    string        `json:"description"`
}

// Subject describes one subject detected in the image.
type Subject struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Prominence  string `json:"prominence"` // "primary", "secondary", "background"
	Count       *int   `json:"count,omitempty"`
}

// Scene describes the overall setting of the image.
type Scene struct {
	Type      string `json:"type"`    // "indoor", "outdoor", "studio", ...
	Setting   string `json:"setting"` // free text, e.g. "commercial kitchen"
	TimeOfDay string `json:"time_of_day,omitempty"`
	Weather   string `json:"weather,omitempty"`
}

// LocationCue is a low-confidence location hint observed in the image.
// Cues are never asserted as fact; promotion into metadata is forbidden
// by the no-hallucination rule.
type LocationCue struct {
	Hint       string  `json:"hint"`
	Confidence float64 `json:"confidence"` // 0.0-1.0
}

// PrimarySubject returns the description of the most prominent subject,
// falling back to the first subject, then the scene setting.
func (a *VisionAnalysis) PrimarySubject() string {
	for _, s := range a.Subjects {
		if s.Prominence == "primary" && s.Description != "" {
			return s.Description
		}
	}
	if len(a.Subjects) > 0 && a.Subjects[0].Description != "" {
		return a.Subjects[0].Description
	}
	return a.Scene.Setting
}
