// Package narration turns an AnalysisResult into spoken text and drives a
// speech synthesizer through the idle, speaking and paused states.
package narration

import (
	"fmt"
	"strings"

	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

// Voice carries the utterance settings a synthesizer should use.
type Voice struct {
	Lang   string  `json:"lang" yaml:"lang"`
	Rate   float64 `json:"rate" yaml:"rate"`
	Pitch  float64 `json:"pitch" yaml:"pitch"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// Script is the text to read aloud together with its voice settings.
type Script struct {
	Text  string `json:"text" yaml:"text"`
	Voice Voice  `json:"voice" yaml:"voice"`
}

type labels struct {
	possibleCondition     string
	severityLevel         string
	summary               string
	identifiedSymptoms    string
	selfCareTips          string
	recommendedSpecialist string
	nextSteps             string
	importantNote         string
	listSeparator         string
	severity              map[models.Severity]string
}

var englishLabels = labels{
	possibleCondition:     "Possible Condition",
	severityLevel:         "Severity Level",
	summary:               "Summary",
	identifiedSymptoms:    "Identified Symptoms",
	selfCareTips:          "Self-Care Tips",
	recommendedSpecialist: "Recommended Specialist",
	nextSteps:             "Next Steps",
	importantNote:         "Important Note",
	listSeparator:         ", ",
	severity: map[models.Severity]string{
		models.SeverityMild:     "Mild",
		models.SeverityModerate: "Moderate",
		models.SeveritySevere:   "Severe",
	},
}

var arabicLabels = labels{
	possibleCondition:     "الحالة المحتملة",
	severityLevel:         "مستوى الخطورة",
	summary:               "ملخص",
	identifiedSymptoms:    "الأعراض المحددة",
	selfCareTips:          "نصائح للعناية الذاتية",
	recommendedSpecialist: "الاختصاصي الموصى به",
	nextSteps:             "الخطوات التالية",
	importantNote:         "ملاحظة هامة",
	listSeparator:         "، ",
	severity: map[models.Severity]string{
		models.SeverityMild:     "خفيف",
		models.SeverityModerate: "متوسط",
		models.SeveritySevere:   "شديد",
	},
}

// VoiceFor returns the default voice for lang: ar-SA for Arabic, en-US
// otherwise, at rate 0.9 with neutral pitch and full volume.
func VoiceFor(lang string) Voice {
	v := Voice{Lang: "en-US", Rate: 0.9, Pitch: 1, Volume: 1}
	if lang == models.LanguageArabic {
		v.Lang = "ar-SA"
	}
	return v
}

// BuildScript renders r as one line per section in reading order. Empty
// sections are skipped.
func BuildScript(r *models.AnalysisResult, lang string) Script {
	l := englishLabels
	if lang == models.LanguageArabic {
		l = arabicLabels
	}

	var lines []string
	add := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add(l.possibleCondition, r.PossibleCondition)
	severity, ok := l.severity[r.Severity]
	if !ok {
		severity = string(r.Severity)
	}
	add(l.severityLevel, severity)
	add(l.summary, r.FeelingSummary)
	add(l.identifiedSymptoms, strings.Join(r.SymptomsExtracted, l.listSeparator))
	add(l.selfCareTips, r.SelfCareTips)
	add(l.recommendedSpecialist, r.RecommendedDoctor)

	steps := make([]string, 0, len(r.NextSteps))
	for i, s := range r.NextSteps {
		steps = append(steps, fmt.Sprintf("%d. %s", i+1, s))
	}
	add(l.nextSteps, strings.Join(steps, " "))
	add(l.importantNote, r.AdditionalNotes)

	return Script{Text: strings.Join(lines, "\n"), Voice: VoiceFor(lang)}
}
