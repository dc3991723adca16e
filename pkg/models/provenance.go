package models

import "fmt"

// ProvenanceSource records where a location field's value came from.
type ProvenanceSource string

const (
	// SourceUser means the value was entered or confirmed by the user.
	SourceUser ProvenanceSource = "user"
	// SourceEXIF means the value was extracted from the image's EXIF data.
	SourceEXIF ProvenanceSource = "exif"
	// SourceAIInferred means the value was inferred by a model. AI-inferred
	// values are never permitted on location fields.
	SourceAIInferred ProvenanceSource = "ai_inferred"
)

// String returns the string representation of a ProvenanceSource.
func (s ProvenanceSource) String() string {
	return string(s)
}

// IsValid returns true if the source is a known provenance source.
func (s ProvenanceSource) IsValid() bool {
	switch s {
	case SourceUser, SourceEXIF, SourceAIInferred:
		return true
	default:
		return false
	}
}

// Location field names used as provenance keys.
const (
	LocationFieldCity        = "city"
	LocationFieldState       = "state"
	LocationFieldCountry     = "country"
	LocationFieldSublocation = "sublocation"
	LocationFieldGPS         = "gps"
)

// LocationProvenance maps each populated location field to its origin.
// A fresh map is built per synthesis run; provenance is never carried
// across runs.
type LocationProvenance map[string]ProvenanceSource

// NewLocationProvenance returns an empty provenance map.
func NewLocationProvenance() LocationProvenance {
	return make(LocationProvenance)
}

// Tag records the origin of a location field. Tagging a location field as
// AI-inferred is a logic error: the synthesizer must have filtered AI
// location output before assembly, so this panics rather than letting a
// hallucinated value acquire a provenance entry.
func (p LocationProvenance) Tag(field string, source ProvenanceSource) {
	if source == SourceAIInferred {
		panic(fmt.Sprintf("provenance: AI-inferred origin is not permitted for location field %q", field))
	}
	if !source.IsValid() {
		panic(fmt.Sprintf("provenance: unknown source %q for field %q", source, field))
	}
	p[field] = source
}

// Source returns the recorded origin of a field, if any.
func (p LocationProvenance) Source(field string) (ProvenanceSource, bool) {
	s, ok := p[field]
	return s, ok
}
