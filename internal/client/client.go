// Package client is an HTTP client for the symptom checker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kiranshivaraju/symptomchecker/internal/narration"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

// Sentinel errors for transport failures.
var (
	ErrServerUnreachable = errors.New("symptom checker server unreachable")
	ErrTimeout           = errors.New("symptom checker request timeout")
)

// APIError is a non-200 answer from the server.
type APIError struct {
	Status     int
	Message    string
	RawContent string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client is the interface for talking to the symptom checker API.
type Client interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
	Narration(ctx context.Context, result *models.AnalysisResult, lang string) (*narration.Script, error)
	Health(ctx context.Context) (*HealthStatus, error)
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status   string `json:"status" yaml:"status"`
	Provider string `json:"provider" yaml:"provider"`
	Model    string `json:"model" yaml:"model"`
}

// HTTPClient implements Client over the server's JSON API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new API client. A zero timeout means no client-side
// limit beyond the request context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/api/analyze-symptoms", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Narration(ctx context.Context, result *models.AnalysisResult, lang string) (*narration.Script, error) {
	body := struct {
		Result   *models.AnalysisResult `json:"result"`
		Language string                 `json:"language,omitempty"`
	}{Result: result, Language: lang}

	var script narration.Script
	if err := c.do(ctx, http.MethodPost, "/api/narration", body, &script); err != nil {
		return nil, err
	}
	return &script, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error      string `json:"error"`
		RawContent string `json:"rawContent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
		apiErr.RawContent = body.RawContent
	}
	return apiErr
}

// classifyError maps transport-level errors to sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
}

// Compile-time check that HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
