package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// validRecord builds a record that passes the full schema. Tests mutate a
// copy to probe individual rules.
func validRecord() *models.PerfectMetadata {
	return &models.PerfectMetadata{
		Descriptive: models.Descriptive{
			Headline:    "Artisan sourdough loaves cooling on a bakery rack",
			Description: "Freshly baked sourdough loaves rest on a wooden cooling rack inside a small artisan bakery, steam still rising from the scored crusts.",
			AltText:     "Rows of golden sourdough loaves cooling on a wooden rack",
			Keywords: []string{
				"sourdough", "artisan bakery", "fresh bread", "baking",
				"loaf", "crust", "wood-fired oven", "small business",
			},
			Category: "LIF",
		},
		Attribution: models.Attribution{
			Creator:         "Jane Smith",
			CreditLine:      "Photo by Jane Smith",
			CopyrightNotice: "© 2026 Jane Smith. All rights reserved.",
		},
		Location: models.Location{Mode: models.LocationModeNone},
		Workflow: models.Workflow{
			JobID:           "job-123",
			ModelRelease:    models.ReleaseNotPresent,
			PropertyRelease: models.ReleaseUnknown,
		},
		Audit: models.Audit{
			RunID:            "550e8400-e29b-41d4-a716-446655440000",
			ProfileVersion:   3,
			PromptVersion:    "2026-08-1",
			VerificationHash: "deadbeef",
		},
	}
}

func errorPaths(r Result) []string {
	paths := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		paths = append(paths, e.Path)
	}
	return paths
}

func TestValidate_ValidRecord(t *testing.T) {
	r := Validate(validRecord())

	assert.True(t, r.Valid, "errors: %v", r.Errors)
	assert.Empty(t, r.Errors)
	assert.Equal(t, RequiredTotal, r.Stats.RequiredComplete)
	assert.Equal(t, 8, r.Stats.KeywordCount)
	assert.True(t, r.Stats.LocationSafe)
}

func TestValidate_Idempotent(t *testing.T) {
	m := validRecord()
	m.Descriptive.Keywords = m.Descriptive.Keywords[:5]

	first := Validate(m)
	second := Validate(m)
	assert.Equal(t, first, second)
}

func TestValidate_LocationModeNoneWithCity(t *testing.T) {
	m := validRecord()
	m.Location.City = "Paris"

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "location.locationMode")
	assert.False(t, r.Stats.LocationSafe)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0].Message, "city")
}

func TestValidate_TooFewKeywords(t *testing.T) {
	m := validRecord()
	m.Descriptive.Keywords = m.Descriptive.Keywords[:5]

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Equal(t, 5, r.Stats.KeywordCount)

	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, "Only 5 keywords (8 required)") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", r.Warnings)
}

func TestValidate_TooManyKeywords(t *testing.T) {
	m := validRecord()
	m.Descriptive.Keywords = nil
	for i := 0; i < 40; i++ {
		m.Descriptive.Keywords = append(m.Descriptive.Keywords, strings.Repeat("k", i+1))
	}

	r := Validate(m)

	require.False(t, r.Valid)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, "40 keywords (35 maximum)") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", r.Warnings)
}

func TestValidate_DuplicateKeywordsCaseInsensitive(t *testing.T) {
	m := validRecord()
	m.Descriptive.Keywords[7] = "Sourdough" // duplicates keywords[0]

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.keywords[7]")
}

func TestValidate_PIIInHeadline(t *testing.T) {
	m := validRecord()
	m.Descriptive.Headline = "Contact me at jane@example.com"

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.headline")
}

func TestValidate_PhoneNumberInDescription(t *testing.T) {
	m := validRecord()
	m.Descriptive.Description += " Call us today at 555-123-4567 to book a session."

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.description")
}

func TestValidate_ExifOnlyProvenanceMismatch(t *testing.T) {
	m := validRecord()
	m.Location = models.Location{
		Mode: models.LocationModeFromExifOnly,
		City: "Berlin",
		Provenance: models.LocationProvenance{
			models.LocationFieldCity: models.SourceUser,
		},
	}

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "location.provenance.city")

	found := false
	for _, e := range r.Errors {
		if strings.Contains(e.Message, "provenance mismatch") {
			found = true
		}
	}
	assert.True(t, found, "errors: %v", r.Errors)
	assert.False(t, r.Stats.LocationSafe)
}

func TestValidate_ExifOnlyMissingProvenance(t *testing.T) {
	m := validRecord()
	m.Location = models.Location{
		Mode: models.LocationModeFromExifOnly,
		City: "Berlin",
	}

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "location.provenance.city")
}

func TestValidate_ExifOnlyWithExifProvenance(t *testing.T) {
	m := validRecord()
	m.Location = models.Location{
		Mode:    models.LocationModeFromExifOnly,
		City:    "Berlin",
		Country: "Germany",
		GPS:     &models.GPSCoordinates{Latitude: 52.52, Longitude: 13.405},
		Provenance: models.LocationProvenance{
			models.LocationFieldCity:    models.SourceEXIF,
			models.LocationFieldCountry: models.SourceEXIF,
			models.LocationFieldGPS:     models.SourceEXIF,
		},
	}

	r := Validate(m)

	assert.True(t, r.Valid, "errors: %v", r.Errors)
	assert.True(t, r.Stats.LocationSafe)
}

func TestValidate_FromProfileUnconstrained(t *testing.T) {
	m := validRecord()
	m.Location = models.Location{
		Mode: models.LocationModeFromProfile,
		City: "Lisbon",
		Provenance: models.LocationProvenance{
			models.LocationFieldCity: models.SourceUser,
		},
	}

	r := Validate(m)
	assert.True(t, r.Valid, "errors: %v", r.Errors)
}

func TestValidate_UnknownLocationMode(t *testing.T) {
	m := validRecord()
	m.Location.Mode = "gps-only"

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "location.locationMode")
	assert.False(t, r.Stats.LocationSafe)
}

func TestValidate_HeadlineBounds(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		valid    bool
	}{
		{"too short", "Hi", false},
		{"at minimum", "Bread", true},
		{"too long", strings.Repeat("a", 201), false},
		{"whitespace only", "   \n\t ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validRecord()
			m.Descriptive.Headline = tt.headline

			r := Validate(m)
			if tt.valid {
				assert.True(t, r.Valid, "errors: %v", r.Errors)
			} else {
				assert.Contains(t, errorPaths(r), "descriptive.headline")
			}
		})
	}
}

func TestValidate_NormalizationCollapsesWhitespace(t *testing.T) {
	m := validRecord()
	// 3 visible characters padded with whitespace; normalized length is 3,
	// below the headline minimum of 5.
	m.Descriptive.Headline = "  a  b\t\n  "

	r := Validate(m)
	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.headline")
}

func TestValidate_UnknownCategory(t *testing.T) {
	m := validRecord()
	m.Descriptive.Category = "XYZ"

	r := Validate(m)
	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.category")
}

func TestValidate_MissingAuditFields(t *testing.T) {
	m := validRecord()
	m.Audit.VerificationHash = ""
	m.Audit.PromptVersion = ""

	r := Validate(m)

	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "audit.verificationHash")
	assert.Contains(t, errorPaths(r), "audit.promptVersion")
	assert.Equal(t, RequiredTotal-2, r.Stats.RequiredComplete)
}

func TestValidateDraft_RelaxesRequiredButNotMaxima(t *testing.T) {
	m := &models.PerfectMetadata{
		Descriptive: models.Descriptive{
			Headline: "Dra", // below minimum, allowed in draft
		},
		Location: models.Location{Mode: models.LocationModeNone},
	}

	r := ValidateDraft(m)
	assert.True(t, r.Valid, "errors: %v", r.Errors)

	m.Descriptive.Headline = strings.Repeat("a", 300)
	r = ValidateDraft(m)
	require.False(t, r.Valid)
	assert.Contains(t, errorPaths(r), "descriptive.headline")
}

func TestValidateDraft_KeepsHardRules(t *testing.T) {
	m := &models.PerfectMetadata{
		Descriptive: models.Descriptive{
			Headline: "Email jane@example.com for bookings",
			Keywords: []string{"bread", "Bread"},
		},
		Location: models.Location{Mode: models.LocationModeNone, City: "Paris"},
	}

	r := ValidateDraft(m)

	require.False(t, r.Valid)
	paths := errorPaths(r)
	assert.Contains(t, paths, "descriptive.headline")
	assert.Contains(t, paths, "descriptive.keywords[1]")
	assert.Contains(t, paths, "location.locationMode")
}

// Completeness must be monotone: populating a required field never lowers
// the score.
func TestStats_CompletenessMonotonic(t *testing.T) {
	m := &models.PerfectMetadata{Location: models.Location{Mode: models.LocationModeNone}}
	prev := Validate(m).Stats.RequiredComplete

	fill := []func(){
		func() { m.Descriptive.Headline = "Artisan bread on display" },
		func() { m.Descriptive.Description = strings.Repeat("Fresh bread in the bakery. ", 3) },
		func() { m.Descriptive.AltText = "Golden loaves on a wooden rack" },
		func() { m.Descriptive.Keywords = []string{"bread"} },
		func() { m.Attribution.Creator = "Jane Smith" },
		func() { m.Attribution.CreditLine = "Photo by Jane Smith" },
		func() { m.Attribution.CopyrightNotice = "© 2026 Jane Smith" },
		func() { m.Workflow.JobID = "job-1" },
		func() { m.Audit.RunID = "run-1" },
		func() { m.Audit.PromptVersion = "v1" },
		func() { m.Audit.VerificationHash = "hash" },
	}

	for i, step := range fill {
		step()
		got := Validate(m).Stats.RequiredComplete
		require.GreaterOrEqual(t, got, prev, "step %d lowered completeness", i)
		prev = got
	}
	assert.Equal(t, RequiredTotal, prev)
}
