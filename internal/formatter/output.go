// Package formatter renders analysis results for the command line.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by DisplayResult.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormat reports whether format is one DisplayResult understands.
func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// DisplayResult formats and writes the analysis result to w.
func DisplayResult(w io.Writer, result *models.AnalysisResult, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, result)
	case FormatYAML:
		return displayYAML(w, result)
	case FormatHuman:
		fallthrough
	default:
		displayHuman(w, result)
	}
	return nil
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, r *models.AnalysisResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Fprintln(w)

	cyan.Fprintln(w, "🩺 POSSIBLE CONDITION:")
	fmt.Fprintf(w, "   %s\n\n", r.PossibleCondition)

	severityColor(r.Severity).Fprintf(w, "📊 SEVERITY: %s %s\n\n", severityIcon(r.Severity), strings.ToUpper(string(r.Severity)))

	if r.FeelingSummary != "" {
		cyan.Fprintln(w, "📝 SUMMARY:")
		fmt.Fprintf(w, "   %s\n\n", r.FeelingSummary)
	}

	if len(r.SymptomsExtracted) > 0 {
		blue.Fprintln(w, "🔎 IDENTIFIED SYMPTOMS:")
		for _, s := range r.SymptomsExtracted {
			fmt.Fprintf(w, "   • %s\n", s)
		}
		fmt.Fprintln(w)
	}

	if r.SelfCareTips != "" {
		magenta.Fprintln(w, "💗 SELF-CARE TIPS:")
		fmt.Fprintf(w, "   %s\n\n", r.SelfCareTips)
	}

	if r.RecommendedDoctor != "" {
		blue.Fprintln(w, "👩‍⚕️ RECOMMENDED SPECIALIST:")
		fmt.Fprintf(w, "   %s\n\n", color.BlueString(r.RecommendedDoctor))
	}

	if len(r.NextSteps) > 0 {
		cyan.Fprintln(w, "🚀 NEXT STEPS:")
		for i, step := range r.NextSteps {
			fmt.Fprintf(w, "   %d. %s\n", i+1, step)
		}
		fmt.Fprintln(w)
	}

	if r.AdditionalNotes != "" {
		yellow.Fprintln(w, "⚠️  IMPORTANT NOTE:")
		fmt.Fprintf(w, "   %s\n\n", color.YellowString(r.AdditionalNotes))
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("This is not a medical diagnosis. Run with -o json or -o yaml for machine-readable output"))
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeveritySevere:
		return color.New(color.FgRed, color.Bold)
	case models.SeverityModerate:
		return color.New(color.FgYellow, color.Bold)
	case models.SeverityMild:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func severityIcon(s models.Severity) string {
	switch s {
	case models.SeveritySevere:
		return "🔴"
	case models.SeverityModerate:
		return "🟡"
	case models.SeverityMild:
		return "🟢"
	default:
		return "⚪"
	}
}

// DisplayAPIError writes a server error, including any raw model output the
// server returned with it.
func DisplayAPIError(w io.Writer, message, rawContent string) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "✗ %s\n", message)
	if rawContent != "" {
		fmt.Fprintln(w, color.HiBlackString("Raw model output:"))
		fmt.Fprintln(w, rawContent)
	}
}
