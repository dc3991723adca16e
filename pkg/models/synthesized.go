package models

// LocationHint is a location value the model volunteered despite the prompt
// instructions. Hints are always tagged SourceAIInferred and are never
// promoted into PerfectMetadata.Location; they exist so callers can show
// "the model thought this might be X" without embedding it.
type LocationHint struct {
	Field      string           `json:"field"` // one of the LocationField* constants
	Value      string           `json:"value"`
	Confidence float64          `json:"confidence"`
	Source     ProvenanceSource `json:"source"` // always "ai_inferred"
}

// SynthesizedMetadata is the synthesizer's output: descriptive-section
// content produced by one LLM call, before assembly into PerfectMetadata.
type SynthesizedMetadata struct {
	Headline      string         `json:"headline"`
	Description   string         `json:"description"`
	AltTextShort  string         `json:"alt_text_short"`
	AltTextLong   string         `json:"alt_text_long,omitempty"`
	Keywords      []string       `json:"keywords"`
	Category      string         `json:"category,omitempty"`
	SubjectCodes  []string       `json:"subject_codes,omitempty"`
	LocationHints []LocationHint `json:"location_hints,omitempty"`
}
