package i18n

// SupportedLanguages lists the language tags the API accepts.
var SupportedLanguages = []string{"en", "yo", "ig", "ha"}

// IsSupported reports whether the given language tag is accepted by the API.
func IsSupported(language string) bool {
	_, ok := translations[language]
	return ok
}

// Translate returns the localized string for a key. Unknown languages fall
// back to English; unknown keys fall back to the key itself.
func Translate(key, language string) string {
	table, ok := translations[language]
	if !ok {
		table = translations["en"]
	}
	if val, ok := table[key]; ok {
		return val
	}
	if val, ok := translations["en"][key]; ok {
		return val
	}
	return key
}

var translations = map[string]map[string]string{
	"en": {
		"produce_detected": "Produce detected",
		"not_produce":      "Could not identify produce type",
		"underripe":        "Underripe",
		"ripe":             "Ripe",
		"overripe":         "Overripe",
		"spoiled":          "Spoiled",
		"healthy":          "Healthy",
		"diseased":         "Diseased",
		"confidence":       "Confidence",
		"recommendation":   "Recommendation",
		"buy_advice":       "Good to buy",
		"wait_advice":      "Wait a few days before consuming",
		"avoid_advice":     "Avoid purchasing, quality compromised",
		"discard_advice":   "Discard immediately, spoiled",
	},
	"yo": {
		"produce_detected": "A ri eso",
		"not_produce":      "Ko ri iru eso",
		"underripe":        "Ko ti pon",
		"ripe":             "Ti pon dada",
		"overripe":         "Ti pon ju",
		"spoiled":          "Ti baje",
		"healthy":          "O dara",
		"diseased":         "O ni arun",
		"confidence":       "Igbagbo",
		"recommendation":   "Imoran",
		"buy_advice":       "O dara lati ra",
		"wait_advice":      "Duro fun ojo die ki o to je e",
		"avoid_advice":     "Mase ra, didara ti baje",
		"discard_advice":   "Da sile lesekese, ti baje",
	},
	"ig": {
		"produce_detected": "Achopụtara mkpuru",
		"not_produce":      "Achọpụtaghị ụdị mkpuru",
		"underripe":        "Ochaghi acha",
		"ripe":             "Achaala nke oma",
		"overripe":         "Achaala nke ukwuu",
		"spoiled":          "Emebiela",
		"healthy":          "O di mma",
		"diseased":         "O nwere oria",
		"confidence":       "Ntukwasi obi",
		"recommendation":   "Ndumod",
		"buy_advice":       "O di mma izuta",
		"wait_advice":      "Chere ubochi ole na ole tupu iri ya",
		"avoid_advice":     "Azula, ogo emebiela",
		"discard_advice":   "Tufuo ozugbo, emebiela",
	},
	"ha": {
		"produce_detected": "An gano kayan lambu",
		"not_produce":      "Ba a gano irin kayan lambu ba",
		"underripe":        "Bai nuna ba",
		"ripe":             "Ya nuna sosai",
		"overripe":         "Ya wuce nuna",
		"spoiled":          "Ya lalace",
		"healthy":          "Yana da lafiya",
		"diseased":         "Yana da cuta",
		"confidence":       "Aminci",
		"recommendation":   "Shawarar",
		"buy_advice":       "Yana da kyau a saya",
		"wait_advice":      "Jira kwanaki kadan kafin ci",
		"avoid_advice":     "Kada ka saya, inganci ya lalace",
		"discard_advice":   "Zubar da shi nan take, ya lalace",
	},
}
