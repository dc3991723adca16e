// Package alttext generates structured alt-text records with a bounded
// attempt policy: one generation attempt, one corrective retry, then a
// deterministic fallback. The generator never returns an error to the
// caller; a usable record always comes back, with UsedFallback and Err
// recording how it was obtained.
package alttext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/jsonutil"
	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/logging"
	"github.com/contextembed/metadata-engine/pkg/models"
	"github.com/contextembed/metadata-engine/pkg/prompts"
	"github.com/contextembed/metadata-engine/pkg/schema"
)

const defaultTemperature = 0.4

// Request identifies one alt-text generation job.
type Request struct {
	Input prompts.AltTextInput
	Mode  models.AltTextMode
}

// Outcome reports how the record was produced. Output is never nil.
type Outcome struct {
	// Success is true when the record was generated by the model, false
	// when the deterministic fallback had to stand in.
	Success      bool
	Output       *models.AltTextOutput
	UsedFallback bool
	Attempts     int
	Usage        llm.Usage
	// Err is the terminal error of the last generation attempt when the
	// fallback was used; nil on generated success.
	Err error
}

// GeneratorConfig tunes the attempt policy.
type GeneratorConfig struct {
	// RetryEnabled permits the single corrective retry after a rejected
	// first attempt.
	RetryEnabled bool
	// Temperature for the generation calls. Zero means the default.
	Temperature float32
}

// Generator produces alt-text records.
type Generator struct {
	client      llm.Client
	logger      *zap.Logger
	retry       bool
	temperature float32
}

// NewGenerator creates an alt-text generator.
func NewGenerator(client llm.Client, cfg GeneratorConfig, logger *zap.Logger) (*Generator, error) {
	if client == nil {
		return nil, fmt.Errorf("alttext: client is required")
	}
	temp := cfg.Temperature
	if temp == 0 {
		temp = defaultTemperature
	}
	return &Generator{
		client:      client,
		logger:      logger.Named("alttext"),
		retry:       cfg.RetryEnabled,
		temperature: temp,
	}, nil
}

// Generate runs the attempt policy and always returns a schema-valid
// record.
func (g *Generator) Generate(ctx context.Context, req Request) Outcome {
	mode := req.Mode
	if !mode.IsValid() {
		mode = models.AltTextModeHybrid
	}

	var out Outcome

	prompt := prompts.BuildAltTextPrompt(req.Input, mode)

	record, err := g.attempt(ctx, prompt, &out)
	if err == nil {
		out.Success = true
		out.Output = record
		g.logger.Debug("alt text generated", zap.Int("attempts", out.Attempts))
		return out
	}

	if g.retry {
		g.logger.Warn("alt text attempt rejected, retrying with correction",
			zap.Error(err))
		record, err = g.attempt(ctx, prompt+prompts.AltTextCorrectionBlock(), &out)
		if err == nil {
			out.Success = true
			out.Output = record
			g.logger.Debug("alt text generated on retry", zap.Int("attempts", out.Attempts))
			return out
		}
	}

	g.logger.Warn("alt text generation failed, using deterministic fallback",
		zap.Int("attempts", out.Attempts),
		zap.Error(err))
	out.Output = Fallback(req.Input)
	out.UsedFallback = true
	out.Err = err
	return out
}

// attempt runs one generation call and validates the parsed record.
func (g *Generator) attempt(ctx context.Context, prompt string, out *Outcome) (*models.AltTextOutput, error) {
	out.Attempts++

	result, err := g.client.Complete(ctx, llm.CompletionRequest{
		System:      prompts.AltTextSystemMessage,
		Prompt:      prompt,
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, err
	}
	out.Usage.Add(result.Usage)

	wire, err := llm.ParseJSONResponse[wireAltText](result.Content)
	if err != nil {
		g.logger.Debug("alt text response was not parsable JSON",
			zap.String("snippet", logging.Snippet(result.Content)))
		return nil, err
	}

	record := wire.toModel()
	if res := schema.ValidateAltText(record); !res.Valid {
		var paths []string
		for _, issue := range res.Errors {
			paths = append(paths, issue.Path+" "+issue.Message)
		}
		return nil, llm.NewError(llm.CodeValidationError,
			"alt text out of bounds: "+strings.Join(paths, "; "), false, nil)
	}
	return record, nil
}

type wireAltText struct {
	AltTextShort         json.RawMessage `json:"alt_text_short"`
	AltTextAccessibility json.RawMessage `json:"alt_text_accessibility"`
	Caption              json.RawMessage `json:"caption"`
	Description          json.RawMessage `json:"description"`
	FocusKeyphrase       json.RawMessage `json:"focus_keyphrase"`
}

func (w wireAltText) toModel() *models.AltTextOutput {
	return &models.AltTextOutput{
		AltTextShort:         schema.Normalize(jsonutil.FlexibleString(w.AltTextShort)),
		AltTextAccessibility: schema.Normalize(jsonutil.FlexibleString(w.AltTextAccessibility)),
		Caption:              schema.Normalize(jsonutil.FlexibleString(w.Caption)),
		Description:          schema.Normalize(jsonutil.FlexibleString(w.Description)),
		FocusKeyphrase:       schema.Normalize(jsonutil.FlexibleString(w.FocusKeyphrase)),
	}
}
