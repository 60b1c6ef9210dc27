package handler

import (
	"net/http"

	"github.com/kiranshivaraju/symptomchecker/internal/api/response"
)

// ProviderInfo reports which completion backend the server is configured for.
type ProviderInfo interface {
	Provider() string
	Model() string
}

// NewHealthHandler returns an http.HandlerFunc for GET /api/health. It does
// not call the provider.
func NewHealthHandler(info ProviderInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, map[string]string{
			"status":   "ok",
			"provider": info.Provider(),
			"model":    info.Model(),
		})
	}
}
