package mappers

import (
	"fmt"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// IPTCFields maps IPTC Core / XMP property names to the values the export
// pipeline embeds. Only populated properties appear; the embedder treats
// a missing key as "leave the tag alone".
type IPTCFields map[string]string

// ToIPTC maps a metadata record to embeddable IPTC Core / XMP properties.
func ToIPTC(meta *models.PerfectMetadata) IPTCFields {
	f := IPTCFields{}

	put := func(key, value string) {
		if value != "" {
			f[key] = value
		}
	}

	put("Iptc4xmpCore:Headline", meta.Descriptive.Headline)
	put("dc:description", meta.Descriptive.Description)
	put("Iptc4xmpCore:AltTextAccessibility", meta.Descriptive.AltText)
	put("dc:subject", joinKeywords(meta.Descriptive.Keywords))
	put("Iptc4xmpCore:IntellectualGenre", meta.Descriptive.Category)
	put("Iptc4xmpCore:SubjectCode", joinKeywords(meta.Descriptive.SubjectCodes))

	put("dc:creator", meta.Attribution.Creator)
	put("photoshop:Credit", meta.Attribution.CreditLine)
	put("dc:rights", meta.Attribution.CopyrightNotice)
	put("xmpRights:UsageTerms", meta.Attribution.UsageTerms)
	put("xmpRights:WebStatement", meta.Attribution.RightsURL)

	put("photoshop:City", meta.Location.City)
	put("photoshop:State", meta.Location.State)
	put("photoshop:Country", meta.Location.Country)
	put("Iptc4xmpCore:Location", meta.Location.Sublocation)
	if gps := meta.Location.GPS; gps != nil {
		put("exif:GPSLatitude", fmt.Sprintf("%.6f", gps.Latitude))
		put("exif:GPSLongitude", fmt.Sprintf("%.6f", gps.Longitude))
	}

	put("photoshop:TransmissionReference", meta.Workflow.JobID)
	put("photoshop:Instructions", meta.Workflow.Instructions)

	put("xmpMM:DocumentID", meta.Audit.RunID)

	return f
}
