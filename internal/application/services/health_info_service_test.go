package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

func TestEmergencyContacts(t *testing.T) {
	assert.Equal(t, []string{"+91-22-24177777", "+91-22-24171111"}, services.EmergencyContacts("Mumbai"))
	assert.Equal(t, []string{"108"}, services.EmergencyContacts("Jaipur"))
	assert.Equal(t, "1098", services.EmergencyNumbers()["child_helpline"])
}

func TestHealthTips(t *testing.T) {
	assert.Len(t, services.HealthTips("diet", entities.LanguageEnglish), 4)
	assert.Equal(t, "दिन में कम से कम 8 गिलास पानी पिएं", services.HealthTips("general", entities.LanguageHindi)[0])
	assert.Equal(t, services.HealthTips("general", entities.LanguageEnglish), services.HealthTips("diet", entities.LanguageTamil))
}

func TestCommonSymptoms(t *testing.T) {
	assert.Equal(t, "காய்ச்சல்", services.CommonSymptoms(entities.LanguageTamil)["fever"])
	assert.Equal(t, "fever", services.CommonSymptoms(entities.LanguageBengali)["fever"])
}
