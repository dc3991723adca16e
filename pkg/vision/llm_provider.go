package vision

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/prompts"
)

const visionTemperature = 0.2

// LLMProvider runs image analysis through a multimodal generation client.
type LLMProvider struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMProvider creates a vision provider backed by a multimodal client.
func NewLLMProvider(client llm.Client, logger *zap.Logger) (*LLMProvider, error) {
	if client == nil {
		return nil, fmt.Errorf("vision: client is required")
	}
	return &LLMProvider{
		client: client,
		logger: logger.Named("vision"),
	}, nil
}

// Analyze implements Provider.
func (p *LLMProvider) Analyze(ctx context.Context, req Request) (*Response, error) {
	if req.ImageBase64 == "" && req.ImageURL == "" {
		return nil, apperrors.ErrNoImage
	}

	result, err := p.client.Complete(ctx, llm.CompletionRequest{
		System:      prompts.VisionSystemMessage,
		Prompt:      prompts.BuildVisionPrompt(req.DetailLevel),
		Temperature: visionTemperature,
		Images: []llm.ImageInput{{
			Base64:   req.ImageBase64,
			URL:      req.ImageURL,
			MimeType: req.MimeType,
		}},
	})
	if err != nil {
		return nil, err
	}

	analysis, err := llm.ParseJSONResponse[wireAnalysis](result.Content)
	if err != nil {
		p.logger.Warn("analysis response was not parsable JSON",
			zap.String("model", p.client.Model()),
			zap.Error(err))
		return nil, err
	}

	parsed := analysis.toModel()
	if strings.TrimSpace(parsed.Description) == "" {
		return nil, llm.NewError(llm.CodeValidationError, "analysis has no description", false, nil)
	}

	p.logger.Debug("image analyzed",
		zap.Int("subjects", len(parsed.Subjects)),
		zap.Int("location_cues", len(parsed.LocationCues)),
		zap.Int("total_tokens", result.Usage.TotalTokens))

	return &Response{Analysis: parsed, Usage: result.Usage}, nil
}

// Ensure LLMProvider implements Provider at compile time.
var _ Provider = (*LLMProvider)(nil)
