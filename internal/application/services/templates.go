package services

import (
	"fmt"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// Localized text used in replies. These tables are read-only after init.

var errorReplies = map[entities.Language]string{
	entities.LanguageEnglish: "I'm sorry, I encountered an error while processing your message. Please try again.",
	entities.LanguageHindi:   "क्षमा करें, आपका संदेश संसाधित करते समय एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
	entities.LanguageTamil:   "மன்னிக்கவும், உங்கள் செய்தியைச் செயலாக்கும்போது பிழை ஏற்பட்டது. மீண்டும் முயற்சிக்கவும்.",
	entities.LanguageTelugu:  "క్షమించండి, మీ సందేశాన్ని ప్రాసెస్ చేస్తున్నప్పుడు లోపం సంభవించింది. దయచేసి మళ్లీ ప్రయత్నించండి.",
	entities.LanguageBengali: "দুঃখিত, আপনার বার্তা প্রক্রিয়া করার সময় একটি ত্রুটি হয়েছে। অনুগ্রহ করে আবার চেষ্টা করুন।",
}

var promptLanguageNames = map[entities.Language]string{
	entities.LanguageEnglish: "English",
	entities.LanguageHindi:   "हिंदी",
	entities.LanguageTamil:   "தமிழ்",
	entities.LanguageTelugu:  "తెలుగు",
	entities.LanguageBengali: "বাংলা",
}

var translationTargetNames = map[entities.Language]string{
	entities.LanguageHindi:   "Hindi",
	entities.LanguageTamil:   "Tamil",
	entities.LanguageTelugu:  "Telugu",
	entities.LanguageBengali: "Bengali",
}

var emergencyTemplates = map[entities.Language]string{
	entities.LanguageEnglish: "🚨 URGENT: Based on your symptoms, you may have {condition}.\n" +
		"This requires IMMEDIATE medical attention. Please:\n" +
		"1. Go to the nearest emergency room immediately\n" +
		"2. Call emergency services (108) if symptoms worsen\n" +
		"3. Do not delay seeking medical help\n" +
		"\n" +
		"{recommendations_inline}",
	entities.LanguageHindi: "🚨 तत्काल: आपके लक्षणों के आधार पर, आपको {condition} हो सकता है।\n" +
		"इसके लिए तुरंत चिकित्सा सहायता की आवश्यकता है। कृपया:\n" +
		"1. तुरंत निकटतम अस्पताल जाएं\n" +
		"2. यदि लक्षण बढ़ें तो आपातकालीन सेवाओं (108) को कॉल करें\n" +
		"3. चिकित्सा सहायता लेने में देरी न करें",
	entities.LanguageTamil: "🚨 அவசரம்: உங்கள் அறிகுறிகளின் அடிப்படையில், உங்களுக்கு {condition} இருக்கலாம்.\n" +
		"இதற்கு உடனடி மருத்துவ கவனிப்பு தேவை. தயவுசெய்து:\n" +
		"1. உடனடியாக அருகிலுள்ள மருத்துவமனைக்கு செல்லுங்கள்\n" +
		"2. அறிகுறிகள் மோசமாகினால் அவசர சேவைகளை (108) அழைக்கவும்",
}

var advisoryTemplates = map[entities.Language]string{
	entities.LanguageEnglish: "Based on your symptoms, you might have {condition} (confidence: {confidence}).\n" +
		"\n" +
		"Severity Level: {severity}\n" +
		"\n" +
		"Recommendations:\n" +
		"{recommendations}\n" +
		"\n" +
		"Please consult with a healthcare professional for proper diagnosis and treatment.",
	entities.LanguageHindi: "आपके लक्षणों के आधार पर, आपको {condition} हो सकता है (विश्वास: {confidence})।\n" +
		"\n" +
		"गंभीरता स्तर: {severity}\n" +
		"\n" +
		"सिफारिशें:\n" +
		"{recommendations}\n" +
		"\n" +
		"उचित निदान और उपचार के लिए कृपया किसी स्वास्थ्य विशेषज्ञ से सलाह लें।",
	entities.LanguageTamil: "உங்கள் அறிகுறிகளின் அடிப்படையில், உங்களுக்கு {condition} இருக்கலாம் (நம்பிக்கை: {confidence}).\n" +
		"\n" +
		"தீவிர நிலை: {severity}\n" +
		"\n" +
		"பரிந்துரைகள்:\n" +
		"{recommendations}\n" +
		"\n" +
		"சரியான நோயறிதல் மற்றும் சிகிச்சைக்காக மருத்துவ நிபுணரை அணுகவும்.",
}

var guidanceSystemPrompts = map[entities.Language]string{
	entities.LanguageEnglish: "You are Sehat Saathi, a friendly AI health assistant that speaks all Indian languages.\n" +
		"Your role is to provide helpful health guidance while being empathetic and culturally sensitive.\n" +
		"Always remind users that you're not a replacement for professional medical advice.",
	entities.LanguageHindi: "आप सेहत साथी हैं, एक मित्रवत AI स्वास्थ्य सहायक जो सभी भारतीय भाषाओं में बात करता है।\n" +
		"आपका काम सहायक स्वास्थ्य मार्गदर्शन प्रदान करना है।",
	entities.LanguageTamil: "நீங்கள் சேகத் சாத்தி, அனைத்து இந்திய மொழிகளிலும் பேசும் ஒரு நட்பான AI சுகாதார உதவியாளர்.\n" +
		"உங்கள் பங்கு பயனுள்ள சுகாதார வழிகாட்டுதலை வழங்குவதாகும்.",
}

var guidanceFallbacks = map[entities.Language]string{
	entities.LanguageEnglish: "I understand your concern. For the best guidance on your health, I recommend consulting with a healthcare professional who can provide personalized advice.",
	entities.LanguageHindi:   "मैं आपकी चिंता समझता हूं। आपके स्वास्थ्य के लिए सबसे अच्छा मार्गदर्शन पाने के लिए, मैं किसी स्वास्थ्य विशेषज्ञ से सलाह लेने की सिफारिश करता हूं।",
	entities.LanguageTamil:   "உங்கள் கவலையை நான் புரிந்துகொள்கிறேன். உங்கள் ஆரோக்கியத்திற்கான சிறந்த வழிகாட்டுதலுக்கு, தனிப்பட்ட ஆலோசனை வழங்கக்கூடிய சுகாதார நிபுணரை அணுகுமாறு பரிந்துரைக்கிறேன்.",
}

var greetingReplies = map[entities.Language]string{
	entities.LanguageEnglish: "Hello! I'm Sehat Saathi, your health assistant. How can I help you today?",
	entities.LanguageHindi:   "नमस्ते! मैं सेहत साथी हूं, आपका स्वास्थ्य सहायक। आज मैं आपकी कैसे मदद कर सकता हूं?",
	entities.LanguageTamil:   "வணக்கம்! நான் சேகத் சாத்தி, உங்கள் சுகாதார உதவியாளர். இன்று உங்களுக்கு எப்படி உதவ முடியும்?",
}

var greetingWords = map[string]bool{
	"hello": true, "hi": true, "hey": true, "namaste": true, "namaskar": true,
	"vanakkam": true, "नमस्ते": true, "नमस्कार": true, "வணக்கம்": true,
	"నమస్కారం": true, "নমস্কার": true,
}

const extractionPromptTemplate = `You are a medical AI assistant. Analyze the following %s text and determine:

1. Does this text mention any health symptoms or medical complaints?
2. If yes, extract all symptoms mentioned and translate them to English
3. Determine the urgency level (low/medium/high)

Text to analyze: "%s"

Respond in this exact JSON format:
{
    "has_symptoms": true/false,
    "symptoms": ["symptom1", "symptom2"],
    "original_language": "%s",
    "urgency": "low/medium/high",
    "medical_context": true/false,
    "confidence": 0.0-1.0
}

Rules:
- Only return true for has_symptoms if the text clearly mentions health issues
- Extract symptoms in simple English terms
- High urgency: chest pain, difficulty breathing, severe bleeding, unconsciousness
- Medium urgency: persistent fever, severe pain, bleeding
- Low urgency: mild symptoms, general discomfort`

const guidancePromptTemplate = `%s

User message: "%s"
Language: %s

Please provide a helpful, empathetic response in %s. If the user is asking about health topics:
1. Provide general health information
2. Suggest healthy lifestyle tips
3. Encourage consulting healthcare professionals for specific concerns
4. Be culturally sensitive to Indian context

Keep the response conversational and supportive.`

const translationPromptTemplate = `Translate the following English text to %s.
Maintain the medical context and be culturally appropriate for Indian users.

Text to translate: "%s"

Provide only the translation, no explanations.`

// localized returns the entry for lang, or the english entry.
func localized(table map[entities.Language]string, lang entities.Language) string {
	if text, ok := table[lang]; ok {
		return text
	}
	return table[entities.LanguageEnglish]
}

func buildExtractionPrompt(text string, lang entities.Language) string {
	return fmt.Sprintf(extractionPromptTemplate, localized(promptLanguageNames, lang), text, lang)
}

func buildGuidancePrompt(text string, lang entities.Language) string {
	return fmt.Sprintf(guidancePromptTemplate, localized(guidanceSystemPrompts, lang), text, lang, lang)
}

func buildTranslationPrompt(text string, target entities.Language) string {
	name, ok := translationTargetNames[target]
	if !ok {
		name = "Hindi"
	}
	return fmt.Sprintf(translationPromptTemplate, name, text)
}

// RenderEmergencyReply fills the emergency directive for lang.
func RenderEmergencyReply(prediction *entities.ConditionPrediction, lang entities.Language) string {
	return strings.TrimRight(predictionReplacer(prediction).Replace(localized(emergencyTemplates, lang)), " \n")
}

// RenderAdvisoryReply fills the advisory message for lang.
func RenderAdvisoryReply(prediction *entities.ConditionPrediction, lang entities.Language) string {
	return predictionReplacer(prediction).Replace(localized(advisoryTemplates, lang))
}

func predictionReplacer(p *entities.ConditionPrediction) *strings.Replacer {
	return strings.NewReplacer(
		"{condition}", p.Label,
		"{confidence}", fmt.Sprintf("%.0f%%", p.Confidence*100),
		"{severity}", p.Severity.Upper(),
		"{recommendations}", strings.Join(p.Recommendations, "\n"),
		"{recommendations_inline}", strings.Join(p.Recommendations, " "),
	)
}

// isGreeting reports whether the message opens with a greeting word.
func isGreeting(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], "!.,?।")
	return greetingWords[first]
}
