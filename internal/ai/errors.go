package ai

import "errors"

var (
	ErrInputRequired    = errors.New("input is required")
	ErrInferenceTimeout = errors.New("ai inference timeout")
	ErrEmptyCompletion  = errors.New("ai provider returned no content")
	ErrInvalidResponse  = errors.New("ai provider returned invalid response")
)

// EmptyCompletionError is returned when the provider answered without any
// message content, including the case where it returned zero choices.
type EmptyCompletionError struct {
	Provider string
}

func (e *EmptyCompletionError) Error() string {
	return "No content returned by " + e.Provider
}

func (e *EmptyCompletionError) Unwrap() error { return ErrEmptyCompletion }

// InvalidFormatError is returned when the provider's content is not valid JSON
// or does not satisfy the AnalysisResult schema. RawContent is the unmodified
// provider text.
type InvalidFormatError struct {
	Provider   string
	RawContent string
	Err        error
}

func (e *InvalidFormatError) Error() string {
	return "Invalid response format from " + e.Provider
}

func (e *InvalidFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidResponse}
	}
	return []error{ErrInvalidResponse, e.Err}
}

// UpstreamError wraps a failure of the provider call itself: network, auth,
// rate limiting or timeout.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Provider + " request failed"
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
