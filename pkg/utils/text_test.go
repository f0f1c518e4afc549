package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "", SanitizeInput(""))
	assert.Equal(t, "I have fever scriptalert1/script", SanitizeInput("  I   have\tfever <script>alert(1)</script> "))
	assert.Equal(t, MaxMessageLength, len([]rune(SanitizeInput(strings.Repeat("a", 1500)))))
	assert.Equal(t, "बुखार है", SanitizeInput("बुखार   है"))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1} "))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "500 m", FormatDistance(0.5))
	assert.Equal(t, "1.0 km", FormatDistance(1))
	assert.Equal(t, "12.3 km", FormatDistance(12.34))
}

func TestFormatSymptoms(t *testing.T) {
	assert.Equal(t, "No symptoms provided", FormatSymptoms(nil))
	assert.Equal(t, "fever", FormatSymptoms([]string{"fever"}))
	assert.Equal(t, "fever and cough", FormatSymptoms([]string{"fever", "cough"}))
	assert.Equal(t, "fever, cough, and headache", FormatSymptoms([]string{"fever", "cough", "headache"}))
}

func TestExtractMedicalEntities(t *testing.T) {
	got := ExtractMedicalEntities("Severe chest pain for 3 days, it often gets worse")
	assert.Equal(t, []string{"3 days"}, got["duration"])
	assert.Equal(t, []string{"severe"}, got["severity"])
	assert.Equal(t, []string{"often"}, got["frequency"])
	assert.Equal(t, []string{"chest"}, got["body_parts"])

	assert.Empty(t, ExtractMedicalEntities("hello there"))
}

func TestSanitizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+919876543210", SanitizePhoneNumber("98765 43210"))
	assert.Equal(t, "+919876543210", SanitizePhoneNumber("+91-98765-43210"))
	assert.Equal(t, "12345", SanitizePhoneNumber("123-45"))
}

func TestCalculateSeverityScore(t *testing.T) {
	assert.Equal(t, 3, CalculateSeverityScore(nil, "common cold"))
	assert.Equal(t, 10, CalculateSeverityScore([]string{"chest pain", "difficulty breathing"}, "heart attack"))
	assert.Equal(t, 7, CalculateSeverityScore(nil, "Pneumonia"))
}
