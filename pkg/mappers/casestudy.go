package mappers

import (
	"gopkg.in/yaml.v3"

	"github.com/contextembed/metadata-engine/pkg/models"
)

// ToCaseStudy flattens a metadata record into the string map the
// case-study generator consumes. Optional fields are present with empty
// values so template lookups never hit a missing key.
func ToCaseStudy(meta *models.PerfectMetadata) map[string]string {
	return map[string]string{
		"title":       meta.Descriptive.Headline,
		"description": meta.Descriptive.Description,
		"alt_text":    meta.Descriptive.AltText,
		"keywords":    joinKeywords(meta.Descriptive.Keywords),
		"category":    meta.Descriptive.Category,
		"creator":     meta.Attribution.Creator,
		"credit":      meta.Attribution.CreditLine,
		"copyright":   meta.Attribution.CopyrightNotice,
		"city":        meta.Location.City,
		"state":       meta.Location.State,
		"country":     meta.Location.Country,
		"job_id":      meta.Workflow.JobID,
		"run_id":      meta.Audit.RunID,
	}
}

// caseStudyFrontMatter is the YAML front-matter shape for generated
// case-study pages. Field order is fixed so regenerated pages diff
// cleanly.
type caseStudyFrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	AltText     string   `yaml:"alt_text,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Creator     string   `yaml:"creator,omitempty"`
	Copyright   string   `yaml:"copyright,omitempty"`
	City        string   `yaml:"city,omitempty"`
	Country     string   `yaml:"country,omitempty"`
	RunID       string   `yaml:"run_id,omitempty"`
}

// CaseStudyFrontMatter renders the record as a YAML front-matter block,
// delimiters included.
func CaseStudyFrontMatter(meta *models.PerfectMetadata) ([]byte, error) {
	body, err := yaml.Marshal(caseStudyFrontMatter{
		Title:       meta.Descriptive.Headline,
		Description: meta.Descriptive.Description,
		AltText:     meta.Descriptive.AltText,
		Keywords:    meta.Descriptive.Keywords,
		Category:    meta.Descriptive.Category,
		Creator:     meta.Attribution.Creator,
		Copyright:   meta.Attribution.CopyrightNotice,
		City:        meta.Location.City,
		Country:     meta.Location.Country,
		RunID:       meta.Audit.RunID,
	})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(body)+8)
	out = append(out, "---\n"...)
	out = append(out, body...)
	out = append(out, "---\n"...)
	return out, nil
}
