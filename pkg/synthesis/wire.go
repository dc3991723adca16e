package synthesis

import (
	"encoding/json"
	"strings"

	"github.com/contextembed/metadata-engine/pkg/jsonutil"
	"github.com/contextembed/metadata-engine/pkg/models"
)

// wireSynthesis is the tolerant wire shape for the synthesis response.
// Scalars decode through jsonutil because models drift on types; keywords
// in particular arrive as arrays, scalars, or comma-joined strings.
type wireSynthesis struct {
	Headline      json.RawMessage `json:"headline"`
	Description   json.RawMessage `json:"description"`
	AltTextShort  json.RawMessage `json:"alt_text_short"`
	AltTextLong   json.RawMessage `json:"alt_text_long"`
	Keywords      json.RawMessage `json:"keywords"`
	Category      json.RawMessage `json:"category"`
	SubjectCodes  json.RawMessage `json:"subject_codes"`
	LocationHints []wireHint      `json:"location_hints"`
}

type wireHint struct {
	Field      json.RawMessage `json:"field"`
	Value      json.RawMessage `json:"value"`
	Confidence json.RawMessage `json:"confidence"`
}

func (w wireSynthesis) toModel() *models.SynthesizedMetadata {
	out := &models.SynthesizedMetadata{
		Headline:     strings.TrimSpace(jsonutil.FlexibleString(w.Headline)),
		Description:  strings.TrimSpace(jsonutil.FlexibleString(w.Description)),
		AltTextShort: strings.TrimSpace(jsonutil.FlexibleString(w.AltTextShort)),
		AltTextLong:  strings.TrimSpace(jsonutil.FlexibleString(w.AltTextLong)),
		Keywords:     jsonutil.FlexibleStringSlice(w.Keywords),
		Category:     strings.ToUpper(strings.TrimSpace(jsonutil.FlexibleString(w.Category))),
		SubjectCodes: jsonutil.FlexibleStringSlice(w.SubjectCodes),
	}

	for _, h := range w.LocationHints {
		field := strings.ToLower(strings.TrimSpace(jsonutil.FlexibleString(h.Field)))
		value := strings.TrimSpace(jsonutil.FlexibleString(h.Value))
		if value == "" || !isHintField(field) {
			continue
		}
		confidence, err := jsonutil.FlexibleFloat(h.Confidence)
		if err != nil || confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}
		out.LocationHints = append(out.LocationHints, models.LocationHint{
			Field:      field,
			Value:      value,
			Confidence: confidence,
			Source:     models.SourceAIInferred,
		})
	}

	return out
}

// isHintField accepts the textual location fields. GPS is excluded on
// purpose: coordinates volunteered by a model are discarded entirely, not
// even kept as hints.
func isHintField(field string) bool {
	switch field {
	case models.LocationFieldCity, models.LocationFieldState,
		models.LocationFieldCountry, models.LocationFieldSublocation:
		return true
	default:
		return false
	}
}
