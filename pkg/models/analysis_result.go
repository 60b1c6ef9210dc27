package models

// Severity is the triage level of an analysis. Always lowercase English,
// whatever language the rest of the result is written in.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// AnalysisResult is the validated answer to a symptom description.
// It is only ever built from a reply that passed schema validation.
type AnalysisResult struct {
	PossibleCondition string   `json:"possibleCondition" yaml:"possibleCondition"`
	Severity          Severity `json:"severity"          yaml:"severity"`
	SelfCareTips      string   `json:"selfCareTips"      yaml:"selfCareTips"`
	RecommendedDoctor string   `json:"recommendedDoctor" yaml:"recommendedDoctor"`
	SymptomsExtracted []string `json:"symptomsExtracted" yaml:"symptomsExtracted"`
	FeelingSummary    string   `json:"feelingSummary"    yaml:"feelingSummary"`
	AdditionalNotes   string   `json:"additionalNotes"   yaml:"additionalNotes"`
	NextSteps         []string `json:"nextSteps"         yaml:"nextSteps"`
}
