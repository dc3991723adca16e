package models

// LocationMode controls where location metadata may come from.
type LocationMode string

const (
	// LocationModeNone forbids all location data in the record.
	LocationModeNone LocationMode = "none"
	// LocationModeFromProfile copies the user-confirmed business location.
	LocationModeFromProfile LocationMode = "fromProfile"
	// LocationModeFromExifOnly allows only EXIF-extracted location data.
	LocationModeFromExifOnly LocationMode = "fromExifOnly"
)

// IsValid returns true if the mode is one of the known location modes.
func (m LocationMode) IsValid() bool {
	switch m {
	case LocationModeNone, LocationModeFromProfile, LocationModeFromExifOnly:
		return true
	default:
		return false
	}
}

// ReleaseStatus records whether a model or property release exists.
type ReleaseStatus string

const (
	ReleaseUnknown    ReleaseStatus = "unknown"
	ReleasePresent    ReleaseStatus = "present"
	ReleaseNotPresent ReleaseStatus = "not_present"
)

// Descriptive holds the per-image descriptive section of a metadata record.
type Descriptive struct {
	Headline     string   `json:"headline"`
	Description  string   `json:"description"`
	AltText      string   `json:"alt_text"`
	Keywords     []string `json:"keywords"`
	Category     string   `json:"category,omitempty"`      // IPTC category code
	SubjectCodes []string `json:"subject_codes,omitempty"` // IPTC subject codes
}

// Attribution holds creator and rights fields, derived from RightsInfo.
type Attribution struct {
	Creator         string `json:"creator"`
	CreditLine      string `json:"credit_line"`
	CopyrightNotice string `json:"copyright_notice"`
	UsageTerms      string `json:"usage_terms,omitempty"`
	RightsURL       string `json:"rights_url,omitempty"`
}

// GPSCoordinates is a decimal-degree coordinate pair.
type GPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location holds location fields plus a per-field provenance map.
// The no-hallucination rule is enforced against this section: mode "none"
// requires every field empty, mode "fromExifOnly" requires every populated
// field to carry "exif" provenance.
type Location struct {
	Mode        LocationMode       `json:"mode"`
	City        string             `json:"city,omitempty"`
	State       string             `json:"state,omitempty"`
	Country     string             `json:"country,omitempty"`
	Sublocation string             `json:"sublocation,omitempty"`
	GPS         *GPSCoordinates    `json:"gps,omitempty"`
	Provenance  LocationProvenance `json:"provenance,omitempty"`
}

// IsEmpty returns true if no location field is populated.
func (l *Location) IsEmpty() bool {
	return l.City == "" && l.State == "" && l.Country == "" &&
		l.Sublocation == "" && l.GPS == nil
}

// PopulatedFields returns the names of the location fields that carry data.
func (l *Location) PopulatedFields() []string {
	var fields []string
	if l.City != "" {
		fields = append(fields, LocationFieldCity)
	}
	if l.State != "" {
		fields = append(fields, LocationFieldState)
	}
	if l.Country != "" {
		fields = append(fields, LocationFieldCountry)
	}
	if l.Sublocation != "" {
		fields = append(fields, LocationFieldSublocation)
	}
	if l.GPS != nil {
		fields = append(fields, LocationFieldGPS)
	}
	return fields
}

// Workflow holds job-level routing fields.
type Workflow struct {
	JobID           string        `json:"job_id"`
	Instructions    string        `json:"instructions,omitempty"`
	ModelRelease    ReleaseStatus `json:"model_release"`
	PropertyRelease ReleaseStatus `json:"property_release"`
}

// Audit is the machine-generated trace section. Always present, never
// user-editable.
type Audit struct {
	RunID            string `json:"run_id"`
	ProfileVersion   int    `json:"profile_version"`
	PromptVersion    string `json:"prompt_version"`
	VerificationHash string `json:"verification_hash"`
}

// PerfectMetadata is the engine's output record, ready for IPTC/XMP
// embedding once it validates. Created fresh per processing run; after
// embedding it is treated as an immutable historical record and any
// re-processing produces a new record rather than a mutation.
type PerfectMetadata struct {
	Descriptive Descriptive `json:"descriptive"`
	Attribution Attribution `json:"attribution"`
	Location    Location    `json:"location"`
	Workflow    Workflow    `json:"workflow"`
	Audit       Audit       `json:"audit"`
}
