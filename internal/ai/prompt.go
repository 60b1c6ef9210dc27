package ai

import (
	"fmt"

	"github.com/kiranshivaraju/symptomchecker/pkg/models"
)

var languageInstructions = map[string]string{
	models.LanguageEnglish: "Respond in English.",
	models.LanguageArabic:  "Respond in Arabic (العربية). All fields must be in Arabic language.",
}

// LanguageInstruction returns the instruction line for lang. Unknown or empty
// languages get the English instruction.
func LanguageInstruction(lang string) string {
	if s, ok := languageInstructions[lang]; ok {
		return s
	}
	return languageInstructions[models.LanguageEnglish]
}

func contentLanguage(lang string) string {
	if lang == models.LanguageArabic {
		return "Arabic"
	}
	return "English"
}

const promptTemplate = `
You are a professional medical AI assistant. The user provides the following information about their health:

"%s"

%s

Analyze the information carefully and provide a detailed response including:
1) The most likely medical condition.
2) Severity level (mild, moderate, severe).
3) Self-care tips.
4) Recommended doctor type to consult.
5) Extracted symptoms from the text as a list.
6) Summary of how the user is feeling.
7) Any additional notes or warnings.
8) Next steps or actions the user should take.

Output ONLY in JSON format as an object with the following structure:
{
  "possibleCondition": "string",
  "severity": "mild | moderate | severe",
  "selfCareTips": "string",
  "recommendedDoctor": "string",
  "symptomsExtracted": ["string", ...],
  "feelingSummary": "string",
  "additionalNotes": "string",
  "nextSteps": ["string", ...]
}

IMPORTANT:
- Keep severity in English lowercase (mild, moderate, or severe)
- All other text content should be in %s
- Respond concisely, clearly, and ONLY in JSON format. Do NOT include any extra text.
`

// BuildPrompt renders the single user message sent to the model. userInput is
// embedded verbatim.
func BuildPrompt(userInput, lang string) string {
	return fmt.Sprintf(promptTemplate, userInput, LanguageInstruction(lang), contentLanguage(lang))
}
