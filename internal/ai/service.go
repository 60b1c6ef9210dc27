package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

// Completion parameters sent with every analysis request.
const (
	completionTemperature = 0.2
	completionMaxTokens   = 1500
	completionTopP        = 1
)

// SymptomService turns a free-text symptom description into a validated
// AnalysisResult with a single provider call. It holds no per-request state
// and is safe for concurrent use.
type SymptomService struct {
	provider models.CompletionProvider
	label    string
	timeout  time.Duration
}

// NewSymptomService creates a SymptomService. A zero timeout leaves the
// caller's context deadline as the only bound on the provider call.
func NewSymptomService(provider models.CompletionProvider, timeout time.Duration) *SymptomService {
	return &SymptomService{
		provider: provider,
		label:    ProviderLabel(provider.Name()),
		timeout:  timeout,
	}
}

// Provider returns the name of the configured provider.
func (s *SymptomService) Provider() string { return s.provider.Name() }

// Model returns the model the configured provider sends requests to.
func (s *SymptomService) Model() string { return s.provider.Model() }

// Analyze validates req, asks the provider for an analysis and checks the
// reply. Errors are one of ErrInputRequired, *EmptyCompletionError,
// *InvalidFormatError or *UpstreamError.
func (s *SymptomService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if strings.TrimSpace(req.UserInput) == "" {
		return nil, ErrInputRequired
	}

	start := time.Now()
	result, err := s.analyze(ctx, req)
	s.logOutcome(req.Language, time.Since(start), err)
	return result, err
}

func (s *SymptomService) analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	content, err := s.provider.Complete(callCtx, models.CompletionRequest{
		Prompt:       BuildPrompt(req.UserInput, req.Language),
		Temperature:  completionTemperature,
		MaxTokens:    completionMaxTokens,
		TopP:         completionTopP,
		JSONResponse: true,
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrInferenceTimeout) {
			err = fmt.Errorf("%w: %v", ErrInferenceTimeout, err)
		}
		return nil, &UpstreamError{Provider: s.label, Err: err}
	}

	if content == "" {
		return nil, &EmptyCompletionError{Provider: s.label}
	}

	result, err := ParseResult([]byte(content))
	if err != nil {
		return nil, &InvalidFormatError{Provider: s.label, RawContent: content, Err: err}
	}
	return result, nil
}

// logOutcome records one line per analysis. User input is health data and is
// never logged.
func (s *SymptomService) logOutcome(lang string, elapsed time.Duration, err error) {
	attrs := []any{
		"provider", s.provider.Name(),
		"model", s.provider.Model(),
		"language", lang,
		"duration_ms", elapsed.Milliseconds(),
	}

	var (
		emptyErr    *EmptyCompletionError
		formatErr   *InvalidFormatError
		upstreamErr *UpstreamError
	)
	switch {
	case err == nil:
		slog.Info("symptom analysis completed", append(attrs, "outcome", "success")...)
	case errors.As(err, &emptyErr):
		slog.Warn("symptom analysis failed", append(attrs, "outcome", "empty_content")...)
	case errors.As(err, &formatErr):
		slog.Warn("symptom analysis failed", append(attrs, "outcome", "invalid_format", "error", formatErr.Err)...)
	case errors.As(err, &upstreamErr):
		slog.Error("symptom analysis failed", append(attrs, "outcome", "upstream_error", "error", upstreamErr.Err)...)
	default:
		slog.Error("symptom analysis failed", append(attrs, "outcome", "error", "error", err)...)
	}
}
