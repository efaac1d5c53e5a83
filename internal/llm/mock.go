package llm

import (
	"context"
	"sync"
	"time"
)

// MockProvider is a scripted Provider for tests. Reply picks the response per
// request; when nil, Text is returned.
type MockProvider struct {
	ProviderName string
	Text         string
	Err          error
	Delay        time.Duration
	Reply        func(req CompletionRequest) (string, error)

	mu       sync.Mutex
	requests []CompletionRequest
}

// NewMockProvider returns a mock that always replies text.
func NewMockProvider(text string) *MockProvider {
	return &MockProvider{ProviderName: "mock", Text: text}
}

func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.Err == nil
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	text, err := m.Text, m.Err
	if m.Reply != nil {
		text, err = m.Reply(req)
	}
	if err != nil {
		return nil, err
	}
	return &CompletionResponse{Text: text, Model: req.Model}, nil
}

// Calls returns how many completions were requested.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of every request seen.
func (m *MockProvider) Requests() []CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CompletionRequest(nil), m.requests...)
}
