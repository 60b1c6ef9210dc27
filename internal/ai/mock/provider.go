package mock

import (
	"context"

	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

// ValidContent is a reply that satisfies the AnalysisResult schema.
const ValidContent = `{
  "possibleCondition": "Common cold",
  "severity": "mild",
  "selfCareTips": "Rest, drink fluids and use saline nasal spray.",
  "recommendedDoctor": "General practitioner",
  "symptomsExtracted": ["runny nose", "sore throat"],
  "feelingSummary": "The user feels tired and congested.",
  "additionalNotes": "See a doctor if fever exceeds 39C.",
  "nextSteps": ["Rest for two days", "Monitor temperature"]
}`

// MockProvider satisfies models.CompletionProvider for testing.
type MockProvider struct {
	Name_        string
	Model_       string
	CompleteFunc func(ctx context.Context, req models.CompletionRequest) (string, error)
}

func (m *MockProvider) Name() string  { return m.Name_ }
func (m *MockProvider) Model() string { return m.Model_ }

func (m *MockProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

// NewMockProvider returns a MockProvider that always answers with ValidContent.
func NewMockProvider() *MockProvider {
	return NewStaticProvider(ValidContent)
}

// NewStaticProvider returns a MockProvider that always answers with content.
func NewStaticProvider(content string) *MockProvider {
	return &MockProvider{
		Name_:  "mock",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return content, nil
		},
	}
}

// NewFailingProvider returns a MockProvider that always returns the given error.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		Name_:  "mock-failing",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, _ models.CompletionRequest) (string, error) {
			return "", err
		},
	}
}

// NewTimeoutProvider returns a MockProvider that blocks until context is cancelled.
func NewTimeoutProvider() *MockProvider {
	return &MockProvider{
		Name_:  "mock-timeout",
		Model_: "mock-v1",
		CompleteFunc: func(ctx context.Context, _ models.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
}

// Compile-time check that MockProvider implements CompletionProvider.
var _ models.CompletionProvider = (*MockProvider)(nil)
