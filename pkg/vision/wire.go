package vision

import (
	"encoding/json"

	"github.com/contextembed/metadata-engine/pkg/jsonutil"
	"github.com/contextembed/metadata-engine/pkg/models"
)

// wireAnalysis is the tolerant wire shape for the analysis response.
// Models drift on scalar types (counts as strings, confidence as strings),
// so scalars decode through jsonutil before mapping onto the domain type.
type wireAnalysis struct {
	Description    json.RawMessage `json:"description"`
	Subjects       []wireSubject   `json:"subjects"`
	Scene          wireScene       `json:"scene"`
	Emotions       json.RawMessage `json:"emotions"`
	StyleCues      json.RawMessage `json:"style_cues"`
	NotableObjects json.RawMessage `json:"notable_objects"`
	DetectedText   json.RawMessage `json:"detected_text"`
	QualityIssues  json.RawMessage `json:"quality_issues"`
	ColorPalette   json.RawMessage `json:"color_palette"`
	Composition    json.RawMessage `json:"composition"`
	LocationCues   []wireCue       `json:"location_cues"`
}

type wireSubject struct {
	Type        json.RawMessage `json:"type"`
	Description json.RawMessage `json:"description"`
	Prominence  json.RawMessage `json:"prominence"`
	Count       *int            `json:"count,omitempty"`
}

type wireScene struct {
	Type      json.RawMessage `json:"type"`
	Setting   json.RawMessage `json:"setting"`
	TimeOfDay json.RawMessage `json:"time_of_day"`
	Weather   json.RawMessage `json:"weather"`
}

type wireCue struct {
	Hint       json.RawMessage `json:"hint"`
	Confidence json.RawMessage `json:"confidence"`
}

func (w wireAnalysis) toModel() *models.VisionAnalysis {
	out := &models.VisionAnalysis{
		Description: jsonutil.FlexibleString(w.Description),
		Scene: models.Scene{
			Type:      jsonutil.FlexibleString(w.Scene.Type),
			Setting:   jsonutil.FlexibleString(w.Scene.Setting),
			TimeOfDay: jsonutil.FlexibleString(w.Scene.TimeOfDay),
			Weather:   jsonutil.FlexibleString(w.Scene.Weather),
		},
		Emotions:       jsonutil.FlexibleStringSlice(w.Emotions),
		StyleCues:      jsonutil.FlexibleStringSlice(w.StyleCues),
		NotableObjects: jsonutil.FlexibleStringSlice(w.NotableObjects),
		DetectedText:   jsonutil.FlexibleStringSlice(w.DetectedText),
		QualityIssues:  jsonutil.FlexibleStringSlice(w.QualityIssues),
		ColorPalette:   jsonutil.FlexibleStringSlice(w.ColorPalette),
		Composition:    jsonutil.FlexibleString(w.Composition),
	}

	for _, s := range w.Subjects {
		out.Subjects = append(out.Subjects, models.Subject{
			Type:        jsonutil.FlexibleString(s.Type),
			Description: jsonutil.FlexibleString(s.Description),
			Prominence:  jsonutil.FlexibleString(s.Prominence),
			Count:       s.Count,
		})
	}

	for _, c := range w.LocationCues {
		hint := jsonutil.FlexibleString(c.Hint)
		if hint == "" {
			continue
		}
		confidence, err := jsonutil.FlexibleFloat(c.Confidence)
		if err != nil {
			confidence = 0
		}
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}
		out.LocationCues = append(out.LocationCues, models.LocationCue{
			Hint:       hint,
			Confidence: confidence,
		})
	}

	return out
}
