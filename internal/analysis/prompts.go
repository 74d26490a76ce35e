package analysis

import _ "embed"

var (
	//go:embed prompts/classification.txt
	promptClassification string
	//go:embed prompts/ripeness.txt
	promptRipeness string
	//go:embed prompts/disease.txt
	promptDisease string
)

// Prompt returns the instruction template for the given analysis kind.
// Unknown kinds yield an empty string; callers must guard against issuing a
// remote call with an empty prompt.
func Prompt(kind Kind) string {
	switch kind {
	case KindClassification:
		return promptClassification
	case KindRipeness:
		return promptRipeness
	case KindDisease:
		return promptDisease
	default:
		return ""
	}
}
