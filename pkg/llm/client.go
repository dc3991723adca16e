// Package llm provides the provider-agnostic LLM client layer for the
// metadata engine: a completion interface with OpenAI, Anthropic, and
// Gemini implementations, typed errors with retryability, JSON extraction
// from model output, and bounded-parallelism helpers for batch runs.
package llm

import "context"

// ImageInput attaches an image to a completion request, either inline
// (base64) or by URL. MimeType defaults to image/jpeg when empty.
type ImageInput struct {
	Base64   string // raw base64 payload, no data: prefix
	URL      string
	MimeType string
}

func (i ImageInput) mimeType() string {
	if i.MimeType == "" {
		return "image/jpeg"
	}
	return i.MimeType
}

// CompletionRequest is a single-turn generation request.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int // 0 means the provider default
	Images      []ImageInput
}

// Usage accounts tokens consumed by one or more completion calls.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage record, e.g. across retry attempts.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// CompletionResult is the raw text output of a completion call plus its
// token accounting.
type CompletionResult struct {
	Content string
	Usage   Usage
}

// Client is the generation capability consumed by the synthesizer, the
// alt-text generator, and the vision adapter. Implementations must be safe
// for concurrent use.
type Client interface {
	// Complete performs one generation call. An empty-content response is
	// returned as a NO_CONTENT *Error, never as a nil result.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)

	// Model returns the configured model name.
	Model() string
}

const defaultMaxTokens = 4096

func maxTokensOrDefault(req CompletionRequest) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return defaultMaxTokens
}
