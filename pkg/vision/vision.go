// Package vision provides the image-analysis capability consumed by the
// pipeline: a provider interface plus an adapter that runs the analysis
// through a multimodal generation client.
package vision

import (
	"context"

	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/models"
)

// Request identifies one image to analyze, inline or by URL.
type Request struct {
	ImageBase64 string // raw base64, no data: prefix
	ImageURL    string
	MimeType    string // defaults to image/jpeg
	DetailLevel string // "low", "standard", "high"
}

// Response is a completed analysis plus token accounting.
type Response struct {
	Analysis *models.VisionAnalysis
	Usage    llm.Usage
}

// Provider is the vision capability. Implementations must be safe for
// concurrent use; failures carry *llm.Error retryability.
type Provider interface {
	Analyze(ctx context.Context, req Request) (*Response, error)
}

// MockProvider is a configurable mock for pipeline tests.
type MockProvider struct {
	// AnalyzeFunc is called when Analyze is invoked. If nil, a minimal
	// analysis is returned.
	AnalyzeFunc func(ctx context.Context, req Request) (*Response, error)

	AnalyzeCalls int
}

// Analyze implements Provider.
func (m *MockProvider) Analyze(ctx context.Context, req Request) (*Response, error) {
	m.AnalyzeCalls++
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return &Response{
		Analysis: &models.VisionAnalysis{
			Description: "mock analysis",
			Subjects: []models.Subject{
				{Type: "object", Description: "mock subject", Prominence: "primary"},
			},
			Scene: models.Scene{Type: "studio", Setting: "mock setting"},
		},
	}, nil
}

// Ensure MockProvider implements Provider at compile time.
var _ Provider = (*MockProvider)(nil)
