package llm

import "context"

// MockClient is a configurable mock for testing generation flows. Set
// CompleteFunc to control behavior; call counters track invocations.
type MockClient struct {
	// CompleteFunc is called when Complete is invoked. If nil, Complete
	// returns an empty result and nil error.
	CompleteFunc func(ctx context.Context, req CompletionRequest) (*CompletionResult, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// CompleteCalls counts invocations; CompleteRequests records them.
	CompleteCalls    int
	CompleteRequests []CompletionRequest
}

// NewMockClient creates a mock with defaults.
func NewMockClient() *MockClient {
	return &MockClient{ModelName: "mock-model"}
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	m.CompleteCalls++
	m.CompleteRequests = append(m.CompleteRequests, req)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return &CompletionResult{}, nil
}

// Model implements Client.
func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// Reset clears call tracking.
func (m *MockClient) Reset() {
	m.CompleteCalls = 0
	m.CompleteRequests = nil
}

// ScriptedClient returns a mock whose successive Complete calls return the
// given results in order. Useful for attempt/retry sequences: pass an
// error (wrapped as a failing result) by giving a nil *CompletionResult
// with a non-nil error in errs at the same index.
func ScriptedClient(contents []string, errs []error) *MockClient {
	m := NewMockClient()
	m.CompleteFunc = func(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
		i := m.CompleteCalls - 1 // Complete increments before calling
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if i < len(contents) {
			return &CompletionResult{Content: contents[i], Usage: Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30}}, nil
		}
		return &CompletionResult{}, nil
	}
	return m
}

// Ensure MockClient implements Client at compile time.
var _ Client = (*MockClient)(nil)
