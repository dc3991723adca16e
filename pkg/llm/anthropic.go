package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
)

// AnthropicConfig configures the Anthropic-backed client.
type AnthropicConfig struct {
	Model  string // e.g. "claude-sonnet-4-5-20250929"
	APIKey string
}

// AnthropicClient is the Anthropic Messages API implementation of Client.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

// NewAnthropicClient creates an Anthropic-backed client.
func NewAnthropicClient(cfg AnthropicConfig, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w", apperrors.ErrMissingAPIKey)
	}
	return &AnthropicClient{
		client: anthropic.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger.Named("llm-anthropic"),
	}, nil
}

// Complete implements Client.
func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	content := make([]anthropic.MessageContent, 0, len(req.Images)+1)
	for _, img := range req.Images {
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return nil, NewError(CodeAPIError, "invalid base64 image payload", false, err)
		}
		content = append(content, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(
				anthropic.MessagesContentSourceTypeBase64, img.mimeType(), data)))
	}
	prompt := req.Prompt
	content = append(content, anthropic.MessageContent{
		Type: anthropic.MessagesContentTypeText,
		Text: &prompt,
	})

	temperature := req.Temperature

	c.logger.Debug("completion request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(req.Prompt)),
		zap.Int("images", len(req.Images)))

	start := time.Now()
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(c.model),
		System:      req.System,
		MaxTokens:   maxTokensOrDefault(req),
		Temperature: &temperature,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		c.logger.Error("completion request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, ClassifyError(err, c.model)
	}

	usage := Usage{
		PromptTokens:     resp.Usage.InputTokens,
		CompletionTokens: resp.Usage.OutputTokens,
		TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
	}

	text := firstTextBlock(resp)
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Code: CodeNoContent, Message: "empty response", Model: c.model}
	}

	c.logger.Info("completion request completed",
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return &CompletionResult{Content: text, Usage: usage}, nil
}

func firstTextBlock(resp anthropic.MessagesResponse) string {
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			return *block.Text
		}
	}
	return ""
}

// Model implements Client.
func (c *AnthropicClient) Model() string {
	return c.model
}

// Ensure AnthropicClient implements Client at compile time.
var _ Client = (*AnthropicClient)(nil)
