package ai_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kiranshivaraju/symptomchecker/internal/ai"
	"github.com/kiranshivaraju/symptomchecker/internal/ai/mock"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProvider counts calls and remembers the last request.
func recordingProvider(content string, calls *int32, last *models.CompletionRequest) *mock.MockProvider {
	var mu sync.Mutex
	p := mock.NewStaticProvider(content)
	p.Name_ = "groq"
	p.CompleteFunc = func(_ context.Context, req models.CompletionRequest) (string, error) {
		atomic.AddInt32(calls, 1)
		mu.Lock()
		*last = req
		mu.Unlock()
		return content, nil
	}
	return p
}

func TestAnalyze_Success(t *testing.T) {
	var calls int32
	var last models.CompletionRequest
	svc := ai.NewSymptomService(recordingProvider(mock.ValidContent, &calls, &last), time.Second)

	result, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "runny nose", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Common cold", result.PossibleCondition)
	assert.Equal(t, int32(1), calls)

	assert.InDelta(t, 0.2, last.Temperature, 0.0001)
	assert.Equal(t, 1500, last.MaxTokens)
	assert.InDelta(t, 1.0, last.TopP, 0.0001)
	assert.True(t, last.JSONResponse)
	assert.Contains(t, last.Prompt, `"runny nose"`)
	assert.Contains(t, last.Prompt, "Respond in English.")
}

func TestAnalyze_ArabicInstruction(t *testing.T) {
	var calls int32
	var last models.CompletionRequest
	svc := ai.NewSymptomService(recordingProvider(mock.ValidContent, &calls, &last), time.Second)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "صداع", Language: "ar"})
	require.NoError(t, err)
	assert.Contains(t, last.Prompt, "Respond in Arabic")
}

func TestAnalyze_EmptyInputNeverCallsProvider(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		var calls int32
		var last models.CompletionRequest
		svc := ai.NewSymptomService(recordingProvider(mock.ValidContent, &calls, &last), time.Second)

		result, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: input})
		assert.ErrorIs(t, err, ai.ErrInputRequired)
		assert.Nil(t, result)
		assert.Equal(t, int32(0), calls)
	}
}

func TestAnalyze_EmptyContent(t *testing.T) {
	p := mock.NewStaticProvider("")
	p.Name_ = "groq"
	svc := ai.NewSymptomService(p, time.Second)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "cough"})

	var emptyErr *ai.EmptyCompletionError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "No content returned by Groq", err.Error())
	assert.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	p := mock.NewStaticProvider("Sorry, I cannot help with that.")
	p.Name_ = "groq"
	svc := ai.NewSymptomService(p, time.Second)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "cough"})

	var formatErr *ai.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "Invalid response format from Groq", err.Error())
	assert.Equal(t, "Sorry, I cannot help with that.", formatErr.RawContent)
	assert.ErrorIs(t, err, ai.ErrInvalidResponse)
}

func TestAnalyze_SchemaViolationKeepsRawContent(t *testing.T) {
	raw := `{"possibleCondition":"Flu","severity":"Severe"}`
	p := mock.NewStaticProvider(raw)
	svc := ai.NewSymptomService(p, time.Second)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "fever"})

	var formatErr *ai.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, raw, formatErr.RawContent)
	assert.Equal(t, "mock", formatErr.Provider)
}

func TestAnalyze_ProviderError(t *testing.T) {
	svc := ai.NewSymptomService(mock.NewFailingProvider(errors.New("401 Invalid API Key")), time.Second)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "fever"})

	var upstreamErr *ai.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "401 Invalid API Key", err.Error())
}

func TestAnalyze_Timeout(t *testing.T) {
	svc := ai.NewSymptomService(mock.NewTimeoutProvider(), 50*time.Millisecond)

	start := time.Now()
	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: "fever"})

	var upstreamErr *ai.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.ErrorIs(t, err, ai.ErrInferenceTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAnalyze_CallerCancellation(t *testing.T) {
	svc := ai.NewSymptomService(mock.NewTimeoutProvider(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, models.AnalysisRequest{UserInput: "fever"})
	var upstreamErr *ai.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_ConcurrentRequestsAreIndependent(t *testing.T) {
	p := &mock.MockProvider{
		Name_:  "mock",
		Model_: "mock-v1",
		CompleteFunc: func(_ context.Context, req models.CompletionRequest) (string, error) {
			time.Sleep(5 * time.Millisecond)
			return mock.ValidContent, nil
		},
	}
	svc := ai.NewSymptomService(p, time.Second)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := fmt.Sprintf("symptom %d", i)
			if i%4 == 0 {
				input = " "
			}
			result, err := svc.Analyze(context.Background(), models.AnalysisRequest{UserInput: input})
			switch {
			case i%4 == 0 && !errors.Is(err, ai.ErrInputRequired):
				errs <- fmt.Errorf("request %d: expected ErrInputRequired, got %v", i, err)
			case i%4 != 0 && (err != nil || result == nil):
				errs <- fmt.Errorf("request %d: unexpected error %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestSymptomService_ProviderAndModel(t *testing.T) {
	svc := ai.NewSymptomService(mock.NewMockProvider(), time.Second)
	assert.Equal(t, "mock", svc.Provider())
	assert.Equal(t, "mock-v1", svc.Model())
}
