package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiranshivaraju/symptomchecker/internal/ai"
	"github.com/kiranshivaraju/symptomchecker/internal/api/response"
	"github.com/kiranshivaraju/symptomchecker/internal/narration"
)

type narrationRequest struct {
	Result   json.RawMessage `json:"result"`
	Language string          `json:"language"`
}

// NewNarrationHandler returns an http.HandlerFunc for POST /api/narration. The
// submitted result is held to the same schema as a model reply.
func NewNarrationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req narrationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := ai.ParseResult(req.Result)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid result", "")
			return
		}

		response.JSON(w, narration.BuildScript(result, req.Language))
	}
}
