package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kiranshivaraju/symptomchecker/internal/ai"
	mw "github.com/kiranshivaraju/symptomchecker/internal/api/middleware"
	"github.com/kiranshivaraju/symptomchecker/internal/api/response"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

// Analyzer defines the interface the handler depends on.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /api/analyze-symptoms.
func NewAnalyzeHandler(svc Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AnalysisRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Language == "" {
			req.Language = models.LanguageEnglish
		}

		result, err := svc.Analyze(r.Context(), req)
		if err != nil {
			writeAnalyzeError(w, r, err)
			return
		}

		response.JSON(w, result)
	}
}

func writeAnalyzeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		emptyErr  *ai.EmptyCompletionError
		formatErr *ai.InvalidFormatError
	)
	switch {
	case errors.Is(err, ai.ErrInputRequired):
		response.Error(w, http.StatusBadRequest, "Input is required", "")
	case errors.As(err, &emptyErr):
		response.Error(w, http.StatusInternalServerError, emptyErr.Error(), "")
	case errors.As(err, &formatErr):
		response.Error(w, http.StatusInternalServerError, formatErr.Error(), formatErr.RawContent)
	default:
		slog.Error("analyze request failed", "error", err, "request_id", mw.GetRequestID(r))
		response.Error(w, http.StatusInternalServerError, "Server error: "+err.Error(), "")
	}
}

// decodeBody decodes a JSON request body into v and writes the 400 or 413
// response itself when that fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
		return false
	}
	response.Error(w, http.StatusBadRequest, "Invalid JSON body", "")
	return false
}
