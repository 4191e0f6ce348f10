package puente

import "strings"

// LanguageNames maps locale codes to human-readable names for AI prompts.
// The service ships with two locales; the rest cover plausible overrides of
// the target-locale directive.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"pt_BR": "Portuguese (Brazil)",
	"fr_FR": "French (France)",
	"de_DE": "German (Germany)",
	"it_IT": "Italian (Italy)",
}

// GetLanguageName returns the human-readable name for a locale code.
// Falls back to the base language, then to the code itself.
func GetLanguageName(locale string) string {
	if name, ok := LanguageNames[locale]; ok {
		return name
	}

	base := strings.ToLower(strings.Split(locale, "_")[0])
	for code, name := range LanguageNames {
		if strings.HasPrefix(code, base+"_") {
			return name
		}
	}

	return locale
}
