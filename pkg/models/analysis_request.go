package models

// Language codes accepted by the analyzer.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// AnalysisRequest is a user's free-text symptom description plus the
// language the answer should be written in.
type AnalysisRequest struct {
	UserInput string `json:"userInput"`
	Language  string `json:"language,omitempty"`
}
