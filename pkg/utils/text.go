package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the longest chat message accepted, in characters.
const MaxMessageLength = 1000

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	unsafeChars    = regexp.MustCompile(`[<>"'%;()&+]`)
	nonDigits      = regexp.MustCompile(`\D`)
	entityPatterns = []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"duration", regexp.MustCompile(`(\d+)\s*(day|week|month|hour|minute)s?`)},
		{"severity", regexp.MustCompile(`(mild|moderate|severe|extreme|intense)`)},
		{"frequency", regexp.MustCompile(`(always|often|sometimes|rarely|never)`)},
		{"body_parts", regexp.MustCompile(`(head|chest|stomach|back|leg|arm|throat|eye)`)},
	}
	highRiskSymptoms = []string{
		"chest pain", "difficulty breathing", "severe bleeding",
		"unconsciousness", "severe headache", "heart attack symptoms",
	}
	highRiskDiseases = []string{
		"heart attack", "stroke", "appendicitis", "pneumonia", "meningitis", "sepsis",
	}
)

// SanitizeInput collapses whitespace, strips markup-ish characters and caps
// the result at MaxMessageLength characters.
func SanitizeInput(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	text = unsafeChars.ReplaceAllString(text, "")
	if utf8.RuneCountInString(text) > MaxMessageLength {
		text = string([]rune(text)[:MaxMessageLength])
	}
	return text
}

// StripCodeFence removes a surrounding ```json or ``` markdown fence from
// model output and trims whitespace.
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

// FormatDistance renders sub-kilometre distances in metres.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%d m", int(distanceKm*1000))
	}
	return fmt.Sprintf("%.1f km", distanceKm)
}

// FormatSymptoms joins symptoms into a readable English list.
func FormatSymptoms(symptoms []string) string {
	switch len(symptoms) {
	case 0:
		return "No symptoms provided"
	case 1:
		return symptoms[0]
	case 2:
		return symptoms[0] + " and " + symptoms[1]
	default:
		return strings.Join(symptoms[:len(symptoms)-1], ", ") + ", and " + symptoms[len(symptoms)-1]
	}
}

// ExtractMedicalEntities pulls duration, severity, frequency and body-part
// mentions out of free text. Each entry holds the full matches in order.
func ExtractMedicalEntities(text string) map[string][]string {
	lower := strings.ToLower(text)
	entities := make(map[string][]string)
	for _, p := range entityPatterns {
		if matches := p.pattern.FindAllString(lower, -1); len(matches) > 0 {
			entities[p.name] = matches
		}
	}
	return entities
}

// SanitizePhoneNumber normalizes Indian numbers to +91 form.
func SanitizePhoneNumber(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(digits, "91") && len(digits) == 12:
		return "+" + digits
	case len(digits) == 10:
		return "+91" + digits
	default:
		return digits
	}
}

// CalculateSeverityScore gives a 1..10 score used for display and analytics.
func CalculateSeverityScore(symptoms []string, disease string) int {
	score := 3
	for _, symptom := range symptoms {
		s := strings.ToLower(symptom)
		for _, risk := range highRiskSymptoms {
			if strings.Contains(s, risk) {
				score += 3
				break
			}
		}
	}
	d := strings.ToLower(disease)
	for _, risk := range highRiskDiseases {
		if strings.Contains(d, risk) {
			score += 4
			break
		}
	}
	if score > 10 {
		return 10
	}
	return score
}
