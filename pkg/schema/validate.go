package schema

import (
	"fmt"
	"strings"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// Validate runs the full structural and semantic contract against a
// candidate record. Use this before a record is considered ready for
// embedding or export.
func Validate(m *models.PerfectMetadata) Result {
	return validate(m, false)
}

// ValidateDraft validates an in-progress record. Required-field checks and
// length minima are relaxed so partially-filled drafts don't drown the UI
// in errors. Length maxima, PII guards, keyword uniqueness, and the
// no-hallucination refinement are NOT relaxed.
func ValidateDraft(m *models.PerfectMetadata) Result {
	return validate(m, true)
}

func validate(m *models.PerfectMetadata, draft bool) Result {
	var r Result

	checkDescriptive(&r, &m.Descriptive, draft)
	checkAttribution(&r, &m.Attribution, draft)
	checkLocation(&r, &m.Location)
	checkWorkflow(&r, &m.Workflow, draft)
	checkAudit(&r, &m.Audit, draft)

	r.Stats = computeStats(m)
	r.Valid = len(r.Errors) == 0
	return r
}

// checkTextBounds validates a normalized free-text field against character
// bounds. Minima are skipped for drafts and for empty fields in draft mode.
func checkTextBounds(r *Result, path, text string, min, max int, draft bool) {
	n := NormalizedLen(text)
	if n == 0 {
		if !draft {
			r.addError(path, "is required")
		}
		return
	}
	if n < min && !draft {
		r.addError(path, fmt.Sprintf("must be at least %d characters (got %d)", min, n))
	}
	if n > max {
		r.addError(path, fmt.Sprintf("must be at most %d characters (got %d)", max, n))
	}
}

func checkDescriptive(r *Result, d *models.Descriptive, draft bool) {
	checkTextBounds(r, "descriptive.headline", d.Headline, HeadlineMin, HeadlineMax, draft)
	checkTextBounds(r, "descriptive.description", d.Description, DescriptionMin, DescriptionMax, draft)
	checkTextBounds(r, "descriptive.altText", d.AltText, AltTextMin, AltTextMax, draft)

	checkPII(r, "descriptive.headline", d.Headline)
	checkPII(r, "descriptive.description", d.Description)
	checkPII(r, "descriptive.altText", d.AltText)

	checkKeywords(r, d.Keywords, draft)

	if d.Category != "" && !IsIPTCCategory(d.Category) {
		r.addError("descriptive.category", fmt.Sprintf("unknown IPTC category code %q", d.Category))
	}
}

func checkKeywords(r *Result, keywords []string, draft bool) {
	n := len(keywords)

	// Count bounds are a structural error when enforcing the full schema,
	// and always reported descriptively as a warning for early UI feedback.
	if n < KeywordsMin {
		if !draft {
			r.addError("descriptive.keywords",
				fmt.Sprintf("must contain between %d and %d keywords (got %d)", KeywordsMin, KeywordsMax, n))
		}
		r.addWarning("descriptive.keywords",
			fmt.Sprintf("Only %d keywords (%d required)", n, KeywordsMin))
	} else if n > KeywordsMax {
		if !draft {
			r.addError("descriptive.keywords",
				fmt.Sprintf("must contain between %d and %d keywords (got %d)", KeywordsMin, KeywordsMax, n))
		}
		r.addWarning("descriptive.keywords",
			fmt.Sprintf("%d keywords (%d maximum)", n, KeywordsMax))
	}

	// Uniqueness is case-insensitive and never relaxed.
	seen := make(map[string]bool, n)
	for i, kw := range keywords {
		norm := Normalize(kw)
		if norm == "" {
			r.addError(fmt.Sprintf("descriptive.keywords[%d]", i), "keyword is empty")
			continue
		}
		if len([]rune(norm)) > KeywordMaxLen {
			r.addError(fmt.Sprintf("descriptive.keywords[%d]", i),
				fmt.Sprintf("keyword exceeds %d characters", KeywordMaxLen))
		}
		lower := strings.ToLower(norm)
		if seen[lower] {
			r.addError(fmt.Sprintf("descriptive.keywords[%d]", i),
				fmt.Sprintf("duplicate keyword %q (case-insensitive)", norm))
			continue
		}
		seen[lower] = true
	}
}

func checkAttribution(r *Result, a *models.Attribution, draft bool) {
	if draft {
		return
	}
	if Normalize(a.Creator) == "" {
		r.addError("attribution.creator", "is required")
	}
	if Normalize(a.CreditLine) == "" {
		r.addError("attribution.creditLine", "is required")
	}
	if Normalize(a.CopyrightNotice) == "" {
		r.addError("attribution.copyrightNotice", "is required")
	}
}

// checkLocation enforces the no-hallucination refinement. These are hard
// errors in every mode, including drafts: ambiguity about location
// authorship must fail validation rather than proceed with a best guess.
func checkLocation(r *Result, l *models.Location) {
	if !l.Mode.IsValid() {
		r.addError("location.locationMode", fmt.Sprintf("unknown location mode %q", l.Mode))
		return
	}

	populated := l.PopulatedFields()

	switch l.Mode {
	case models.LocationModeNone:
		if len(populated) > 0 {
			// Early UI feedback first, then the hard error.
			r.addWarning("location", fmt.Sprintf(
				"location data present (%s) while location mode is \"none\"",
				strings.Join(populated, ", ")))
			r.addError("location.locationMode", fmt.Sprintf(
				"location mode is \"none\" but location fields are populated: %s",
				strings.Join(populated, ", ")))
		}
	case models.LocationModeFromExifOnly:
		for _, field := range populated {
			src, ok := l.Provenance.Source(field)
			if !ok {
				r.addError("location.provenance."+field,
					"populated location field has no recorded provenance under \"fromExifOnly\"")
				continue
			}
			if src != models.SourceEXIF {
				r.addError("location.provenance."+field, fmt.Sprintf(
					"provenance mismatch: %q must come from EXIF under \"fromExifOnly\", got %q", field, src))
			}
		}
	case models.LocationModeFromProfile:
		// Profile-sourced location is unconstrained by the refinement; the
		// values were confirmed by the user during onboarding.
	}
}

func checkWorkflow(r *Result, w *models.Workflow, draft bool) {
	if !draft && Normalize(w.JobID) == "" {
		r.addError("workflow.jobId", "is required")
	}
	checkRelease(r, "workflow.modelRelease", w.ModelRelease)
	checkRelease(r, "workflow.propertyRelease", w.PropertyRelease)
}

func checkRelease(r *Result, path string, s models.ReleaseStatus) {
	switch s {
	case models.ReleaseUnknown, models.ReleasePresent, models.ReleaseNotPresent, "":
	default:
		r.addError(path, fmt.Sprintf("unknown release status %q", s))
	}
}

func checkAudit(r *Result, a *models.Audit, draft bool) {
	if draft {
		return
	}
	if a.RunID == "" {
		r.addError("audit.runId", "is required")
	}
	if a.PromptVersion == "" {
		r.addError("audit.promptVersion", "is required")
	}
	if a.VerificationHash == "" {
		r.addError("audit.verificationHash", "is required")
	}
}

// requiredFields enumerates the fields counted by the completeness score.
// ProfileVersion is numeric and always carried, so it is not counted as a
// populatable field; the list holds exactly RequiredTotal entries.
func requiredFields(m *models.PerfectMetadata) []bool {
	return []bool{
		Normalize(m.Descriptive.Headline) != "",
		Normalize(m.Descriptive.Description) != "",
		Normalize(m.Descriptive.AltText) != "",
		len(m.Descriptive.Keywords) > 0,
		Normalize(m.Attribution.Creator) != "",
		Normalize(m.Attribution.CreditLine) != "",
		Normalize(m.Attribution.CopyrightNotice) != "",
		Normalize(m.Workflow.JobID) != "",
		m.Audit.RunID != "",
		m.Audit.PromptVersion != "",
		m.Audit.VerificationHash != "",
	}
}

// computeStats derives the completeness score and location safety,
// independent of strict schema validity.
func computeStats(m *models.PerfectMetadata) Stats {
	complete := 0
	for _, present := range requiredFields(m) {
		if present {
			complete++
		}
	}
	return Stats{
		RequiredComplete: complete,
		RequiredTotal:    RequiredTotal,
		KeywordCount:     len(m.Descriptive.Keywords),
		LocationSafe:     locationSafe(&m.Location),
	}
}

func locationSafe(l *models.Location) bool {
	switch l.Mode {
	case models.LocationModeNone:
		return l.IsEmpty()
	case models.LocationModeFromExifOnly:
		for _, field := range l.PopulatedFields() {
			if src, ok := l.Provenance.Source(field); !ok || src != models.SourceEXIF {
				return false
			}
		}
		return true
	case models.LocationModeFromProfile:
		return true
	default:
		return false
	}
}
