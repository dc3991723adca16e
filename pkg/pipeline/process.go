package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/alttext"
	"github.com/contextembed/metadata-engine/pkg/apperrors"
	"github.com/contextembed/metadata-engine/pkg/models"
	"github.com/contextembed/metadata-engine/pkg/prompts"
	"github.com/contextembed/metadata-engine/pkg/retry"
	"github.com/contextembed/metadata-engine/pkg/schema"
	"github.com/contextembed/metadata-engine/pkg/synthesis"
	"github.com/contextembed/metadata-engine/pkg/vision"
)

// ProcessImage runs the full pipeline for one image. The returned
// RunResult always carries the caller's input ID; on success Metadata is
// assembled and validated, on failure Err explains which stage failed.
func (e *Engine) ProcessImage(ctx context.Context, input ImageInput, profile *models.OnboardingProfile) RunResult {
	res := RunResult{InputID: input.ID}

	if profile == nil {
		res.Err = apperrors.ErrNoProfile
		return res
	}
	if err := e.breaker.Allow(); err != nil {
		res.Err = err
		return res
	}

	log := e.logger.With(zap.String("input_id", input.ID))

	visionResp, err := e.vision.Analyze(ctx, vision.Request{
		ImageBase64: input.ImageBase64,
		ImageURL:    input.ImageURL,
		MimeType:    input.MimeType,
		DetailLevel: input.DetailLevel,
	})
	if err != nil {
		e.breaker.RecordFailure()
		log.Warn("vision analysis failed", zap.Error(err))
		res.Err = err
		return res
	}
	res.Analysis = visionResp.Analysis
	res.Usage.Add(visionResp.Usage)

	// The synthesizer itself never retries; transient failures are
	// retried here with backoff, permanent ones fail immediately.
	synthRes, err := retry.DoIfRetryable(ctx, e.retryCfg, func() (*synthesis.Result, error) {
		return e.synth.Synthesize(ctx, synthesis.Request{
			Analysis:     visionResp.Analysis,
			Profile:      profile,
			UserComment:  input.UserComment,
			EventContext: input.EventContext,
		})
	})
	if err != nil {
		e.breaker.RecordFailure()
		log.Warn("synthesis failed", zap.Error(err))
		res.Err = err
		return res
	}
	e.breaker.RecordSuccess()
	res.Synthesized = synthRes.Metadata
	res.Usage.Add(synthRes.Usage)

	keyphrase := ""
	if len(synthRes.Metadata.Keywords) > 0 {
		keyphrase = synthRes.Metadata.Keywords[0]
	}
	altOutcome := e.alt.Generate(ctx, alttext.Request{
		Input: prompts.AltTextInput{
			Subject:      visionResp.Analysis.PrimarySubject(),
			ImageContext: input.ImageContext,
			BrandName:    profile.BrandName,
			Industry:     profile.Industry,
			Keyphrase:    keyphrase,
		},
		Mode: input.AltTextMode,
	})
	res.AltText = altOutcome.Output
	res.AltFallback = altOutcome.UsedFallback
	res.Usage.Add(altOutcome.Usage)

	res.Metadata = e.assemble(input, profile, synthRes.Metadata, altOutcome.Output)
	res.Validation = schema.Validate(res.Metadata)

	log.Info("image processed",
		zap.Bool("valid", res.Validation.Valid),
		zap.Int("errors", len(res.Validation.Errors)),
		zap.Int("warnings", len(res.Validation.Warnings)),
		zap.Bool("alt_fallback", altOutcome.UsedFallback),
		zap.Int("total_tokens", res.Usage.TotalTokens))

	return res
}

// assemble builds the final record. Location is populated strictly per
// mode; synthesized location hints are never copied in.
func (e *Engine) assemble(
	input ImageInput,
	profile *models.OnboardingProfile,
	synthesized *models.SynthesizedMetadata,
	alt *models.AltTextOutput,
) *models.PerfectMetadata {
	altText := synthesized.AltTextShort
	if alt != nil && alt.AltTextShort != "" {
		altText = alt.AltTextShort
	}

	meta := &models.PerfectMetadata{
		Descriptive: models.Descriptive{
			Headline:     synthesized.Headline,
			Description:  synthesized.Description,
			AltText:      altText,
			Keywords:     synthesized.Keywords,
			Category:     synthesized.Category,
			SubjectCodes: synthesized.SubjectCodes,
		},
		Attribution: synthesis.BuildAttribution(profile.Rights, e.now()),
		Location:    buildLocation(profile, input.EXIF),
		Workflow: models.Workflow{
			JobID:           input.JobID,
			Instructions:    input.Instructions,
			ModelRelease:    releaseOrUnknown(input.ModelRelease),
			PropertyRelease: releaseOrUnknown(input.PropertyRelease),
		},
		Audit: models.Audit{
			RunID:          uuid.NewString(),
			ProfileVersion: profile.Version,
			PromptVersion:  prompts.Version,
		},
	}
	meta.Audit.VerificationHash = verificationHash(meta)
	return meta
}

// buildLocation populates the location section for the profile's mode.
func buildLocation(profile *models.OnboardingProfile, exif *EXIFLocation) models.Location {
	mode := profile.Preferences.LocationMode
	if !mode.IsValid() {
		mode = models.LocationModeNone
	}

	loc := models.Location{Mode: mode}

	switch mode {
	case models.LocationModeNone:
		// Nothing is permitted, not even user-entered fields.

	case models.LocationModeFromProfile:
		prov := models.NewLocationProvenance()
		if city := profile.Location.City; city != "" {
			loc.City = city
			prov.Tag(models.LocationFieldCity, models.SourceUser)
		}
		if state := profile.Location.State; state != "" {
			loc.State = state
			prov.Tag(models.LocationFieldState, models.SourceUser)
		}
		if country := profile.Location.Country; country != "" {
			loc.Country = country
			prov.Tag(models.LocationFieldCountry, models.SourceUser)
		}
		if len(prov) > 0 {
			loc.Provenance = prov
		}

	case models.LocationModeFromExifOnly:
		if exif == nil {
			break
		}
		prov := models.NewLocationProvenance()
		if exif.City != "" {
			loc.City = exif.City
			prov.Tag(models.LocationFieldCity, models.SourceEXIF)
		}
		if exif.State != "" {
			loc.State = exif.State
			prov.Tag(models.LocationFieldState, models.SourceEXIF)
		}
		if exif.Country != "" {
			loc.Country = exif.Country
			prov.Tag(models.LocationFieldCountry, models.SourceEXIF)
		}
		if exif.Sublocation != "" {
			loc.Sublocation = exif.Sublocation
			prov.Tag(models.LocationFieldSublocation, models.SourceEXIF)
		}
		if exif.GPS != nil {
			gps := *exif.GPS
			loc.GPS = &gps
			prov.Tag(models.LocationFieldGPS, models.SourceEXIF)
		}
		if len(prov) > 0 {
			loc.Provenance = prov
		}
	}

	return loc
}

func releaseOrUnknown(s models.ReleaseStatus) models.ReleaseStatus {
	switch s {
	case models.ReleasePresent, models.ReleaseNotPresent:
		return s
	default:
		return models.ReleaseUnknown
	}
}

// verificationHash hashes the record content minus the hash field itself,
// so a record can later be checked against tampering. The JSON encoding
// of the struct is stable for a given record, which is all the audit
// trail needs.
func verificationHash(meta *models.PerfectMetadata) string {
	clone := *meta
	clone.Audit.VerificationHash = ""

	payload, err := json.Marshal(&clone)
	if err != nil {
		// Marshal of a plain struct cannot fail; keep the record usable
		// if it somehow does.
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
