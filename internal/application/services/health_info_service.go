package services

import (
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// NationalEmergencyNumber is dialled for ambulances anywhere in India.
const NationalEmergencyNumber = "108"

var cityEmergencyContacts = map[string][]string{
	"mumbai":    {"+91-22-24177777", "+91-22-24171111"},
	"delhi":     {"+91-11-23221122", "+91-11-23223344"},
	"chennai":   {"+91-44-28411111", "+91-44-28522222"},
	"kolkata":   {"+91-33-22143526", "+91-33-22876543"},
	"bangalore": {"+91-80-22344444", "+91-80-22555555"},
}

var emergencyNumbers = map[string]string{
	"national":       NationalEmergencyNumber,
	"police":         "100",
	"fire":           "101",
	"women_helpline": "1091",
	"child_helpline": "1098",
}

var healthTips = map[string]map[entities.Language][]string{
	"general": {
		entities.LanguageEnglish: {
			"Drink at least 8 glasses of water daily",
			"Exercise for 30 minutes daily",
			"Get 7-8 hours of sleep",
			"Eat a balanced diet with fruits and vegetables",
			"Practice stress management techniques",
		},
		entities.LanguageHindi: {
			"दिन में कम से कम 8 गिलास पानी पिएं",
			"रोज 30 मिनट व्यायाम करें",
			"7-8 घंटे की नींद लें",
			"फल और सब्जियों के साथ संतुलित आहार लें",
			"तनाव प्रबंधन तकनीकों का अभ्यास करें",
		},
	},
	"diet": {
		entities.LanguageEnglish: {
			"Include seasonal fruits in your diet",
			"Limit processed foods and sugar",
			"Eat smaller, frequent meals",
			"Include protein in every meal",
		},
	},
}

var commonSymptoms = map[entities.Language]map[string]string{
	entities.LanguageEnglish: {
		"fever": "fever", "headache": "headache", "cough": "cough", "pain": "pain", "nausea": "nausea",
	},
	entities.LanguageHindi: {
		"fever": "बुखार", "headache": "सिरदर्द", "cough": "खांसी", "pain": "दर्द", "nausea": "जी मिचलाना",
	},
	entities.LanguageTamil: {
		"fever": "காய்ச்சல்", "headache": "தலைவலி", "cough": "இருமல்", "pain": "வலி", "nausea": "குமட்டல்",
	},
}

// EmergencyContacts returns local ambulance numbers for a city, or the
// national number for unknown cities.
func EmergencyContacts(city string) []string {
	if contacts, ok := cityEmergencyContacts[strings.ToLower(strings.TrimSpace(city))]; ok {
		return append([]string(nil), contacts...)
	}
	return []string{NationalEmergencyNumber}
}

// EmergencyNumbers returns the national helpline directory.
func EmergencyNumbers() map[string]string {
	out := make(map[string]string, len(emergencyNumbers))
	for k, v := range emergencyNumbers {
		out[k] = v
	}
	return out
}

// HealthTips falls back to general english tips when the category or
// language is not available.
func HealthTips(category string, lang entities.Language) []string {
	if tips, ok := healthTips[category][lang]; ok {
		return tips
	}
	return healthTips["general"][entities.LanguageEnglish]
}

// CommonSymptoms maps English symptom keys to their local names.
func CommonSymptoms(lang entities.Language) map[string]string {
	if symptoms, ok := commonSymptoms[lang]; ok {
		return symptoms
	}
	return commonSymptoms[entities.LanguageEnglish]
}
