package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const (
	keywordFallbackConfidence = 0.5
	noEscalationConfidence    = 0.9
	escalationTokenThreshold  = 3
)

var symptomKeywords = map[entities.Language][]string{
	entities.LanguageEnglish: {
		"pain", "ache", "hurt", "fever", "cough", "cold", "headache", "nausea",
		"vomiting", "diarrhea", "constipation", "bleeding", "swelling", "rash",
		"itching", "burning", "numbness", "weakness", "dizziness", "fatigue",
		"tired", "breathless", "chest pain", "stomach pain", "back pain",
		"joint pain", "sore throat", "runny nose", "sneezing", "chills",
		"sweating", "cramps",
	},
	entities.LanguageHindi: {
		"दर्द", "पीड़ा", "बुखार", "खांसी", "सर्दी", "सिरदर्द", "जी मिचलाना",
		"उल्टी", "दस्त", "कब्ज", "खून", "सूजन", "खुजली", "जलन", "सुन्नता",
		"कमजोरी", "चक्कर", "थकान", "सांस फूलना", "सीने में दर्द", "पेट दर्द", "कमर दर्द",
	},
	entities.LanguageTamil: {
		"வலி", "காய்ச்சல்", "இருமல்", "சளி", "தலைவலி", "குமட்டல்", "வாந்தி",
		"வயிற்றுப்போக்கு", "மலச்சிக்கல்", "இரத்தம்", "வீக்கம்", "அரிப்பு",
		"எரிச்சல்", "பலவீனம்",
	},
	entities.LanguageTelugu: {
		"నొప్పి", "జ్వరం", "దగ్గు", "జలుబు", "తలనొప్పి", "వాంతులు", "విరేచనలు",
		"మలబద్దకం", "రక్తం", "వాపు",
	},
	entities.LanguageBengali: {
		"ব্যথা", "জ্বর", "কাশি", "সর্দি", "মাথাব্যথা", "বমি", "ডায়রিয়া",
		"কোষ্ঠকাঠিন্য", "রক্ত", "ফোলা",
	},
}

// keywordTranslations normalizes non-English keywords for the classifier.
var keywordTranslations = map[string]string{
	"दर्द": "pain", "पीड़ा": "pain", "बुखार": "fever", "खांसी": "cough", "सर्दी": "cold",
	"सिरदर्द": "headache", "जी मिचलाना": "nausea", "उल्टी": "vomiting", "दस्त": "diarrhea",
	"कब्ज": "constipation", "खून": "bleeding", "सूजन": "swelling", "खुजली": "itching",
	"जलन": "burning", "सुन्नता": "numbness", "कमजोरी": "weakness", "चक्कर": "dizziness",
	"थकान": "fatigue", "सांस फूलना": "breathlessness", "सीने में दर्द": "chest pain",
	"पेट दर्द": "stomach pain", "कमर दर्द": "back pain",

	"வலி": "pain", "காய்ச்சல்": "fever", "இருமல்": "cough", "சளி": "cold",
	"தலைவலி": "headache", "குமட்டல்": "nausea", "வாந்தி": "vomiting",
	"வயிற்றுப்போக்கு": "diarrhea", "மலச்சிக்கல்": "constipation", "இரத்தம்": "bleeding",
	"வீக்கம்": "swelling", "அரிப்பு": "itching", "எரிச்சல்": "burning", "பலவீனம்": "weakness",

	"నొప్పి": "pain", "జ్వరం": "fever", "దగ్గు": "cough", "జలుబు": "cold",
	"తలనొప్పి": "headache", "వాంతులు": "vomiting", "విరేచనలు": "diarrhea",
	"మలబద్దకం": "constipation", "రక్తం": "bleeding", "వాపు": "swelling",

	"ব্যথা": "pain", "জ্বর": "fever", "কাশি": "cough", "সর্দি": "cold",
	"মাথাব্যথা": "headache", "বমি": "vomiting", "ডায়রিয়া": "diarrhea",
	"কোষ্ঠকাঠিন্য": "constipation", "রক্ত": "bleeding", "ফোলা": "swelling",
}

type symptomPattern struct {
	pattern *regexp.Regexp
	// symptomatic patterns describe the complaint itself and can stand in
	// as a symptom when nothing else was extracted.
	symptomatic bool
}

var englishSymptomPatterns = []symptomPattern{
	{regexp.MustCompile(`\b(feeling|feel)\s+(sick|unwell|ill|bad)\b`), true},
	{regexp.MustCompile(`\b(have|having|got)\s+(a|an)?\s*(fever|cold|cough|headache)\b`), true},
	{regexp.MustCompile(`\b(pain|ache|hurt|hurts|hurting)\b`), true},
	{regexp.MustCompile(`\b(doctor|hospital|medicine|treatment|symptoms?)\b`), false},
	{regexp.MustCompile(`\b(since|for)\s+\d+\s+(days?|weeks?|months?|hours?)\b`), false},
	{regexp.MustCompile(`\b(getting\s+worse|not\s+feeling\s+well)\b`), true},
}

// KeywordScan is the deterministic first tier of symptom detection.
type KeywordScan struct {
	Hit      bool
	Symptoms []string
}

// ScanKeywords matches text against the language's keyword list and the
// English patterns. Symptoms are English-normalized where possible.
func ScanKeywords(text string, lang entities.Language) KeywordScan {
	lower := strings.ToLower(text)
	keywords, ok := symptomKeywords[lang]
	if !ok {
		keywords = symptomKeywords[entities.LanguageEnglish]
	}

	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	matched = dropContainedKeywords(matched)

	scan := KeywordScan{Hit: len(matched) > 0}
	seen := make(map[string]bool)
	for _, kw := range matched {
		symptom := kw
		if english, ok := keywordTranslations[kw]; ok {
			symptom = english
		}
		if !seen[symptom] {
			seen[symptom] = true
			scan.Symptoms = append(scan.Symptoms, symptom)
		}
	}

	var patternSymptoms []string
	for _, p := range englishSymptomPatterns {
		match := p.pattern.FindString(lower)
		if match == "" {
			continue
		}
		scan.Hit = true
		if p.symptomatic {
			patternSymptoms = append(patternSymptoms, match)
		}
	}
	if len(scan.Symptoms) == 0 {
		for _, s := range patternSymptoms {
			if !seen[s] {
				seen[s] = true
				scan.Symptoms = append(scan.Symptoms, s)
			}
		}
	}
	if scan.Symptoms == nil {
		scan.Symptoms = []string{}
	}
	return scan
}

// dropContainedKeywords removes matches that are part of a longer match,
// so "headache" does not also report "ache".
func dropContainedKeywords(matched []string) []string {
	out := make([]string, 0, len(matched))
	for i, kw := range matched {
		contained := false
		for j, other := range matched {
			if i != j && len(other) > len(kw) && strings.Contains(other, kw) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, kw)
		}
	}
	return out
}

// SymptomDetector decides whether a message describes symptoms. Cheap
// keyword checks gate a structured extraction by the language model.
type SymptomDetector struct {
	languages *LanguageDetector
	model     providers.LanguageModelProvider
	timeout   time.Duration
	metrics   *observability.Metrics
}

// NewSymptomDetector creates a detector. model may be nil, in which case
// every escalation uses the keyword fallback.
func NewSymptomDetector(languages *LanguageDetector, model providers.LanguageModelProvider, timeout time.Duration, metrics *observability.Metrics) *SymptomDetector {
	if languages == nil {
		languages = NewLanguageDetector()
	}
	return &SymptomDetector{
		languages: languages,
		model:     model,
		timeout:   timeout,
		metrics:   metrics,
	}
}

// Analyze runs language detection, the keyword scan and, when warranted,
// the language model extraction.
func (d *SymptomDetector) Analyze(ctx context.Context, text string) entities.SymptomAnalysis {
	lang := d.languages.Detect(text)
	scan := ScanKeywords(text, lang)
	logger := observability.LoggerFromContext(ctx)

	escalate := scan.Hit || len(strings.Fields(text)) > escalationTokenThreshold
	if !escalate {
		analysis := entities.SymptomAnalysis{
			HasSymptoms:     false,
			Language:        lang,
			Urgency:         entities.UrgencyLow,
			Confidence:      noEscalationConfidence,
			DetectionMethod: entities.DetectionKeyword,
			InputText:       text,
		}.Normalize()
		recordDetection(analysis)
		return analysis
	}

	reply, err := d.extract(ctx, text, lang)
	if err != nil {
		logger.Warn().Err(err).Str("language", string(lang)).Bool("keyword_hit", scan.Hit).
			Msg("symptom extraction failed, using keyword fallback")
		observability.TriageFallbacks.WithLabelValues("language_model").Inc()
		analysis := keywordFallback(scan, lang, text)
		recordDetection(analysis)
		return analysis
	}

	analysis := reply.Analysis(lang, text)
	recordDetection(analysis)
	return analysis
}

func (d *SymptomDetector) extract(ctx context.Context, text string, lang entities.Language) (*ExtractionReply, error) {
	if d.model == nil {
		return nil, errNoLanguageModel
	}
	callCtx, cancel := withOracleTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	raw, err := d.model.Complete(callCtx, providers.CompletionRequest{
		Prompt:      buildExtractionPrompt(text, lang),
		Temperature: 0.1,
		MaxTokens:   300,
	})
	observability.RecordOracleCall(ctx, d.metrics, "language_model", "extract", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return ParseExtractionReply(raw)
}

func keywordFallback(scan KeywordScan, lang entities.Language, text string) entities.SymptomAnalysis {
	return entities.SymptomAnalysis{
		HasSymptoms:     scan.Hit,
		Symptoms:        scan.Symptoms,
		Language:        lang,
		Urgency:         entities.UrgencyLow,
		MedicalContext:  scan.Hit,
		Confidence:      keywordFallbackConfidence,
		DetectionMethod: entities.DetectionKeyword,
		InputText:       text,
	}.Normalize()
}

func recordDetection(a entities.SymptomAnalysis) {
	observability.TriageDetection.WithLabelValues(string(a.DetectionMethod), strconv.FormatBool(a.HasSymptoms)).Inc()
}
