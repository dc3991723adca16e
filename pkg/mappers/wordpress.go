// Package mappers provides pure, side-effect-free transforms from a
// validated metadata record into downstream payload shapes. Validation
// already happened upstream; the mappers never re-validate, and missing
// optional fields map to empty strings rather than nulls.
package mappers

import (
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// WordPressPayload matches the WordPress media endpoint's writable fields.
type WordPressPayload struct {
	Title       string `json:"title"`
	AltText     string `json:"alt_text"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// ToWordPress maps a metadata record to WordPress media fields. alt is the
// structured alt-text record when one was generated; pass nil when the run
// produced only the synthesized legacy alt fields.
//
// Alt-text source priority: structured alt-text output, then the record's
// own alt text, then headline or description as a last resort.
func ToWordPress(meta *models.PerfectMetadata, alt *models.AltTextOutput) WordPressPayload {
	p := WordPressPayload{
		Title:       meta.Descriptive.Headline,
		Description: meta.Descriptive.Description,
	}

	switch {
	case alt != nil && alt.AltTextShort != "":
		p.AltText = alt.AltTextShort
	case meta.Descriptive.AltText != "":
		p.AltText = meta.Descriptive.AltText
	case meta.Descriptive.Headline != "":
		p.AltText = meta.Descriptive.Headline
	default:
		p.AltText = meta.Descriptive.Description
	}

	switch {
	case alt != nil && alt.Caption != "":
		p.Caption = alt.Caption
	default:
		p.Caption = meta.Descriptive.Headline
	}

	if alt != nil && alt.Description != "" {
		p.Description = alt.Description
	}

	return p
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}
