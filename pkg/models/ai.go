// Package models contains shared data models used across the symptom checker codebase.
package models

import "context"

// CompletionProvider is the core interface that all LLM integrations must implement.
// Never call a specific provider SDK directly; always inject this interface.
type CompletionProvider interface {
	// Complete sends a single-turn prompt and returns the raw text of the first choice.
	// An empty string with a nil error means the provider answered without content.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name returns the provider identifier (e.g., "groq", "openai").
	Name() string
	// Model returns the model identifier requests are sent to.
	Model() string
}

// CompletionRequest is the input to a single chat-completion call.
type CompletionRequest struct {
	Prompt       string
	Temperature  float32
	MaxTokens    int
	TopP         float32
	JSONResponse bool // ask the provider for a json_object payload
}
