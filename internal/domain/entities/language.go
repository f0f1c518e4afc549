package entities

// Language is one of the closed set of languages the assistant answers in.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageTamil   Language = "tamil"
	LanguageTelugu  Language = "telugu"
	LanguageBengali Language = "bengali"
)

// SupportedLanguages lists the languages in display order.
var SupportedLanguages = []Language{
	LanguageEnglish,
	LanguageHindi,
	LanguageTamil,
	LanguageTelugu,
	LanguageBengali,
}

var languageCodes = map[Language]string{
	LanguageEnglish: "en",
	LanguageHindi:   "hi",
	LanguageTamil:   "ta",
	LanguageTelugu:  "te",
	LanguageBengali: "bn",
}

// Code returns the ISO 639-1 code, defaulting to "en".
func (l Language) Code() string {
	if code, ok := languageCodes[l]; ok {
		return code
	}
	return "en"
}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	_, ok := languageCodes[l]
	return ok
}

// ParseLanguage accepts either a language name or an ISO code. Unknown input
// yields english and false.
func ParseLanguage(value string) (Language, bool) {
	if Language(value).IsSupported() {
		return Language(value), true
	}
	for lang, code := range languageCodes {
		if code == value {
			return lang, true
		}
	}
	return LanguageEnglish, false
}

// LanguageCodes returns a name to ISO code map for API responses.
func LanguageCodes() map[string]string {
	out := make(map[string]string, len(languageCodes))
	for lang, code := range languageCodes {
		out[string(lang)] = code
	}
	return out
}
