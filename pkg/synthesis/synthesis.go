// Package synthesis orchestrates the single LLM call that turns a vision
// analysis plus confirmed business context into descriptive metadata.
//
// The synthesizer does not retry: it classifies failures with a retryable
// flag and leaves retry policy to the caller. This is deliberate contrast
// with the alt-text service, which owns its own two-attempt policy.
package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/logging"
	"github.com/contextembed/metadata-engine/pkg/models"
	"github.com/contextembed/metadata-engine/pkg/prompts"
)

const synthesisTemperature = 0.5

// Request carries everything the synthesis prompt is built from.
type Request struct {
	Analysis     *models.VisionAnalysis
	Profile      *models.OnboardingProfile
	UserComment  string
	EventContext string
}

// Result is the synthesized metadata plus token accounting.
type Result struct {
	Metadata *models.SynthesizedMetadata
	Usage    llm.Usage
}

// Synthesizer produces descriptive-section metadata via one generation
// call.
type Synthesizer struct {
	client llm.Client
	logger *zap.Logger
}

// New creates a synthesizer. A nil client is a construction error.
func New(client llm.Client, logger *zap.Logger) (*Synthesizer, error) {
	if client == nil {
		return nil, fmt.Errorf("synthesis: client is required")
	}
	return &Synthesizer{
		client: client,
		logger: logger.Named("synthesis"),
	}, nil
}

// Synthesize performs the generation call and returns validated
// synthesized metadata. Errors are *llm.Error with a code
// (NO_CONTENT, PARSE_ERROR, VALIDATION_ERROR, API_ERROR, UNKNOWN_ERROR)
// and a Retryable flag; rate limits and 5xx are retryable, everything
// else is not.
func (s *Synthesizer) Synthesize(ctx context.Context, req Request) (*Result, error) {
	if req.Analysis == nil {
		return nil, llm.NewError(llm.CodeValidationError, "vision analysis is required", false, nil)
	}
	if req.Profile == nil {
		return nil, llm.NewError(llm.CodeValidationError, "onboarding profile is required", false, apperrors.ErrNoProfile)
	}

	prompt := prompts.BuildSynthesisPrompt(req.Analysis, req.Profile, req.UserComment, req.EventContext)

	s.logger.Debug("synthesis request",
		zap.String("brand", req.Profile.BrandName),
		zap.Int("profile_version", req.Profile.Version),
		zap.Int("prompt_len", len(prompt)))

	result, err := s.client.Complete(ctx, llm.CompletionRequest{
		System:      prompts.SynthesisSystemMessage,
		Prompt:      prompt,
		Temperature: synthesisTemperature,
	})
	if err != nil {
		return nil, err
	}

	wire, err := llm.ParseJSONResponse[wireSynthesis](result.Content)
	if err != nil {
		s.logger.Warn("synthesis response was not parsable JSON",
			zap.String("model", s.client.Model()),
			zap.String("snippet", logging.Snippet(result.Content)),
			zap.Error(err))
		return nil, err
	}

	meta := wire.toModel()
	if issues := validateSynthesized(meta); len(issues) > 0 {
		s.logger.Warn("synthesis response failed validation",
			zap.Strings("issues", issues))
		return nil, llm.NewError(llm.CodeValidationError,
			"synthesized metadata invalid: "+strings.Join(issues, "; "), false, nil)
	}

	s.logger.Info("metadata synthesized",
		zap.Int("keywords", len(meta.Keywords)),
		zap.Int("location_hints", len(meta.LocationHints)),
		zap.Int("total_tokens", result.Usage.TotalTokens))

	return &Result{Metadata: meta, Usage: result.Usage}, nil
}

// validateSynthesized checks the minimum shape the assembler depends on.
// Full schema validation runs later against the assembled record; this
// catches responses too broken to assemble at all.
func validateSynthesized(m *models.SynthesizedMetadata) []string {
	var issues []string
	if strings.TrimSpace(m.Headline) == "" {
		issues = append(issues, "headline is empty")
	}
	if strings.TrimSpace(m.Description) == "" {
		issues = append(issues, "description is empty")
	}
	if strings.TrimSpace(m.AltTextShort) == "" {
		issues = append(issues, "alt_text_short is empty")
	}
	if len(m.Keywords) == 0 {
		issues = append(issues, "keywords are empty")
	}
	return issues
}

// BuildAttribution derives the attribution section from rights info,
// interpolating {year} and {creator} template placeholders against the
// supplied clock time.
func BuildAttribution(rights models.RightsInfo, now time.Time) models.Attribution {
	year := fmt.Sprintf("%d", now.Year())

	interpolate := func(template string) string {
		out := strings.ReplaceAll(template, "{year}", year)
		return strings.ReplaceAll(out, "{creator}", rights.CreatorName)
	}

	copyright := interpolate(rights.CopyrightTemplate)
	if copyright == "" && rights.CreatorName != "" {
		copyright = fmt.Sprintf("© %s %s. All rights reserved.", year, rights.CreatorName)
	}
	credit := interpolate(rights.CreditTemplate)
	if credit == "" {
		credit = rights.CreatorName
	}

	return models.Attribution{
		Creator:         rights.CreatorName,
		CreditLine:      credit,
		CopyrightNotice: copyright,
		UsageTerms:      rights.UsageTerms,
		RightsURL:       rights.RightsURL,
	}
}
