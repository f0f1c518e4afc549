package services

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

var whatlangLanguages = map[whatlanggo.Lang]entities.Language{
	whatlanggo.Eng: entities.LanguageEnglish,
	whatlanggo.Hin: entities.LanguageHindi,
	whatlanggo.Tam: entities.LanguageTamil,
	whatlanggo.Tel: entities.LanguageTelugu,
	whatlanggo.Ben: entities.LanguageBengali,
}

// Each supported non-Latin language has its own script, so any letter in
// one of these decides the language without statistical detection.
var scriptLanguages = []struct {
	script *unicode.RangeTable
	lang   entities.Language
}{
	{unicode.Devanagari, entities.LanguageHindi},
	{unicode.Tamil, entities.LanguageTamil},
	{unicode.Telugu, entities.LanguageTelugu},
	{unicode.Bengali, entities.LanguageBengali},
}

// scriptLanguage returns the language whose script has the most letters in
// text. Ties go to the earlier entry in scriptLanguages.
func scriptLanguage(text string) (entities.Language, bool) {
	counts := make([]int, len(scriptLanguages))
	for _, r := range text {
		if r < 0x0900 {
			continue
		}
		for i, sl := range scriptLanguages {
			if unicode.Is(sl.script, r) {
				counts[i]++
				break
			}
		}
	}
	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return scriptLanguages[best].lang, true
}

// LanguageDetector identifies which supported language a message is written in.
type LanguageDetector struct {
	options whatlanggo.Options
}

// NewLanguageDetector restricts detection to the supported languages.
func NewLanguageDetector() *LanguageDetector {
	whitelist := make(map[whatlanggo.Lang]bool, len(whatlangLanguages))
	for lang := range whatlangLanguages {
		whitelist[lang] = true
	}
	return &LanguageDetector{options: whatlanggo.Options{Whitelist: whitelist}}
}

// Detect returns the message language. Indic script wins outright; Latin
// text goes through whatlanggo. Anything undetectable is english.
func (d *LanguageDetector) Detect(text string) entities.Language {
	if strings.TrimSpace(text) == "" {
		return entities.LanguageEnglish
	}
	if lang, ok := scriptLanguage(text); ok {
		return lang
	}
	info := whatlanggo.DetectWithOptions(text, d.options)
	if lang, ok := whatlangLanguages[info.Lang]; ok {
		return lang
	}
	return entities.LanguageEnglish
}
