package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
)

// GeminiConfig configures the Gemini-backed client.
type GeminiConfig struct {
	Model  string // e.g. "gemini-2.0-flash"
	APIKey string
}

// GeminiClient is the Google Gemini implementation of Client. A genai
// client is created per call and closed afterwards; the SDK holds gRPC
// connections that should not outlive the request.
type GeminiClient struct {
	model  string
	apiKey string
	logger *zap.Logger
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(cfg GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", apperrors.ErrMissingAPIKey)
	}
	return &GeminiClient{
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger.Named("llm-gemini"),
	}, nil
}

// Complete implements Client.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, ClassifyError(err, c.model)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	temperature := req.Temperature
	m.GenerationConfig = genai.GenerationConfig{Temperature: &temperature}
	if req.System != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	parts := make([]genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return nil, NewError(CodeAPIError, "invalid base64 image payload", false, err)
		}
		parts = append(parts, genai.Blob{MIMEType: img.mimeType(), Data: data})
	}
	parts = append(parts, genai.Text(req.Prompt))

	c.logger.Debug("completion request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(req.Prompt)),
		zap.Int("images", len(req.Images)))

	start := time.Now()
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		c.logger.Error("completion request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, ClassifyError(err, c.model)
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	text := geminiText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Code: CodeNoContent, Message: "empty response", Model: c.model}
	}

	c.logger.Info("completion request completed",
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return &CompletionResult{Content: text, Usage: usage}, nil
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// Model implements Client.
func (c *GeminiClient) Model() string {
	return c.model
}

// Ensure GeminiClient implements Client at compile time.
var _ Client = (*GeminiClient)(nil)
