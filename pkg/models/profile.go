package models

// RightsInfo holds creator and rights templates confirmed during onboarding.
// Templates may contain the placeholders {year} and {creator}, interpolated
// at synthesis time.
type RightsInfo struct {
	CreatorName       string `json:"creator_name"`
	CopyrightTemplate string `json:"copyright_template"` // e.g. "© {year} {creator}. All rights reserved."
	CreditTemplate    string `json:"credit_template"`    // e.g. "Photo by {creator}"
	RightsURL         string `json:"rights_url,omitempty"`
	UsageTerms        string `json:"usage_terms,omitempty"`
}

// OutputPreferences controls how generated metadata is shaped.
type OutputPreferences struct {
	Language     string       `json:"language"`      // BCP 47, e.g. "en-US"
	KeywordStyle string       `json:"keyword_style"` // "broad", "specific", "mixed"
	KeywordCount int          `json:"keyword_count"` // target count within [8,35]
	LocationMode LocationMode `json:"location_mode"`
}

// OnboardingProfile is the confirmed business/brand context for a project.
// Created once during onboarding, user-editable afterwards; every edit bumps
// Version so metadata records can be traced to the context they were built
// from.
type OnboardingProfile struct {
	BrandName        string            `json:"brand_name"`
	Industry         string            `json:"industry"`
	Services         []string          `json:"services,omitempty"`
	TargetAudience   string            `json:"target_audience,omitempty"`
	Location         ProfileLocation   `json:"location"`
	AuthoritySignals []string          `json:"authority_signals,omitempty"`
	PricingTier      string            `json:"pricing_tier,omitempty"`
	UniqueValue      string            `json:"unique_value,omitempty"`
	Rights           RightsInfo        `json:"rights"`
	Preferences      OutputPreferences `json:"preferences"`
	Version          int               `json:"version"`
}

// ProfileLocation is the user-entered business location. Fields copied from
// here into metadata carry "user" provenance.
type ProfileLocation struct {
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	ServiceArea string `json:"service_area,omitempty"`
}
