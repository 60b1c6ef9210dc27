package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		PossibleCondition: "Migraine",
		Severity:          models.SeverityModerate,
		SelfCareTips:      "Rest in a dark room.",
		RecommendedDoctor: "Neurologist",
		SymptomsExtracted: []string{"headache", "nausea"},
		FeelingSummary:    "Exhausted",
		AdditionalNotes:   "Seek care if vision changes.",
		NextSteps:         []string{"Drink water", "Track triggers"},
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("human"))
	assert.True(t, ValidFormat("json"))
	assert.True(t, ValidFormat("yaml"))
	assert.False(t, ValidFormat("xml"))
}

func TestDisplayResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResult(&buf, sampleResult(), FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Migraine", got["possibleCondition"])
	assert.Equal(t, "moderate", got["severity"])
}

func TestDisplayResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResult(&buf, sampleResult(), FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Neurologist", got["recommendedDoctor"])
	assert.Equal(t, []any{"Drink water", "Track triggers"}, got["nextSteps"])
}

func TestDisplayResult_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResult(&buf, sampleResult(), FormatHuman))
	out := buf.String()

	assert.Contains(t, out, "POSSIBLE CONDITION:")
	assert.Contains(t, out, "Migraine")
	assert.Contains(t, out, "SEVERITY: 🟡 MODERATE")
	assert.Contains(t, out, "• nausea")
	assert.Contains(t, out, "2. Track triggers")
	assert.Contains(t, out, "Seek care if vision changes.")
	assert.Less(t, strings.Index(out, "POSSIBLE CONDITION"), strings.Index(out, "NEXT STEPS"))
}

func TestDisplayResult_UnknownFormatFallsBackToHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResult(&buf, sampleResult(), "table"))
	assert.Contains(t, buf.String(), "POSSIBLE CONDITION:")
}

func TestDisplayAPIError(t *testing.T) {
	var buf bytes.Buffer
	DisplayAPIError(&buf, "Invalid response format from Groq", "not json")
	assert.Contains(t, buf.String(), "Invalid response format from Groq")
	assert.Contains(t, buf.String(), "not json")

	buf.Reset()
	DisplayAPIError(&buf, "Input is required", "")
	assert.NotContains(t, buf.String(), "Raw model output")
}
