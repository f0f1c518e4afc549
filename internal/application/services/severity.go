package services

import (
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

type severityTier struct {
	severity   entities.Severity
	conditions []string
}

// severityTiers is checked in order; the first tier with a matching
// condition wins.
var severityTiers = []severityTier{
	{entities.SeverityHigh, []string{
		"heart attack", "stroke", "appendicitis", "heart failure",
		"pneumonia", "meningitis", "sepsis", "pulmonary embolism",
		"diabetic ketoacidosis", "severe allergic reaction",
		"acute coronary syndrome", "anaphylaxis",
	}},
	{entities.SeverityMedium, []string{
		"diabetes", "hypertension", "asthma", "bronchitis",
		"urinary tract infection", "gastritis", "migraine",
		"depression", "anxiety", "arthritis", "osteoporosis",
	}},
	{entities.SeverityLow, []string{
		"common cold", "flu", "headache", "muscle strain",
		"minor cuts", "mild fever", "fatigue", "indigestion",
		"seasonal allergies", "minor skin irritation",
	}},
}

var tierRecommendations = map[entities.Severity][]string{
	entities.SeverityHigh: {
		"🚨 Seek immediate medical attention",
		"🏥 Go to the nearest emergency room",
		"📞 Call emergency services if symptoms worsen",
		"🚫 Do not delay medical treatment",
	},
	entities.SeverityMedium: {
		"👨‍⚕️ Schedule an appointment with a doctor",
		"📋 Monitor your symptoms closely",
		"💊 Follow prescribed medications if any",
		"🏥 Visit a clinic within 24-48 hours",
	},
	entities.SeverityLow: {
		"🏠 Rest and take care of yourself",
		"💧 Stay hydrated",
		"🌡️ Monitor your temperature",
		"👨‍⚕️ Consult a doctor if symptoms persist",
	},
}

type keywordAddition struct {
	keyword string
	text    string
}

var conditionRecommendations = []keywordAddition{
	{"fever", "🌡️ Take temperature-reducing medication if needed"},
	{"cough", "🍯 Try warm liquids and honey"},
	{"pain", "💊 Consider over-the-counter pain relief"},
	{"infection", "🧼 Maintain good hygiene"},
}

var baseFollowUpQuestions = []string{
	"How long have you been experiencing these symptoms?",
	"Have you taken any medication for this?",
	"Do you have any other symptoms not mentioned?",
	"Any family history of similar conditions?",
}

var conditionFollowUps = []struct {
	keyword   string
	questions []string
}{
	{"diabetes", []string{"Do you check your blood sugar regularly?", "Have you noticed increased thirst or urination?"}},
	{"heart", []string{"Do you experience chest pain during physical activity?", "Any shortness of breath?"}},
	{"infection", []string{"Do you have a fever?", "Any recent travel or exposure to illness?"}},
}

// AssessSeverity maps a condition label to a severity tier by
// case-insensitive substring match. Unknown labels are medium.
func AssessSeverity(label string) entities.Severity {
	lower := strings.ToLower(label)
	for _, tier := range severityTiers {
		for _, condition := range tier.conditions {
			if strings.Contains(lower, condition) {
				return tier.severity
			}
		}
	}
	return entities.SeverityMedium
}

// GetRecommendations returns the tier template followed by any
// condition-specific additions.
func GetRecommendations(label string, severity entities.Severity) []string {
	base, ok := tierRecommendations[severity]
	if !ok {
		base = tierRecommendations[entities.SeverityLow]
	}
	out := make([]string, 0, len(base)+len(conditionRecommendations))
	out = append(out, base...)

	lower := strings.ToLower(label)
	for _, add := range conditionRecommendations {
		if strings.Contains(lower, add.keyword) {
			out = append(out, add.text)
		}
	}
	return out
}

// GetFollowUpQuestions returns at most MaxFollowUpQuestions questions.
// Condition extras are appended after the baseline and so only surface if
// the baseline is ever shortened.
func GetFollowUpQuestions(label string, symptoms []string) []string {
	questions := make([]string, 0, len(baseFollowUpQuestions)+2)
	questions = append(questions, baseFollowUpQuestions...)

	lower := strings.ToLower(label)
	for _, extra := range conditionFollowUps {
		if strings.Contains(lower, extra.keyword) {
			questions = append(questions, extra.questions...)
		}
	}
	if len(questions) > entities.MaxFollowUpQuestions {
		questions = questions[:entities.MaxFollowUpQuestions]
	}
	return questions
}
