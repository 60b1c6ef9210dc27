package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error      string `json:"error"`
	RawContent string `json:"rawContent,omitempty"`
}

// JSON writes v as the 200 response body without any envelope.
func JSON(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

// Error writes {"error": message}. A non-empty rawContent is added as
// "rawContent" so clients can inspect what the model produced.
func Error(w http.ResponseWriter, status int, message, rawContent string) {
	writeJSON(w, status, errorBody{Error: message, RawContent: rawContent})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
