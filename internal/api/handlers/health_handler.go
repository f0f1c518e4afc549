package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

// FacilityFinder locates facilities and routes to them.
type FacilityFinder interface {
	FindNearby(ctx context.Context, loc entities.Location, severity entities.Severity) []entities.FacilityResult
	Directions(ctx context.Context, origin, destination entities.Location) (*entities.Directions, error)
}

// ProfileStore reads and updates user profiles.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*entities.UserProfile, error)
	Update(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.UserProfile, error)
}

// MedicalHistoryReader derives a user's medical timeline.
type MedicalHistoryReader interface {
	MedicalHistory(ctx context.Context, userID string) ([]entities.MedicalHistoryEntry, error)
}

// HealthHandler handles the /api/health endpoints
type HealthHandler struct {
	facilities FacilityFinder
	profiles   ProfileStore
	history    MedicalHistoryReader
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(facilities FacilityFinder, profiles ProfileStore, history MedicalHistoryReader) *HealthHandler {
	return &HealthHandler{
		facilities: facilities,
		profiles:   profiles,
		history:    history,
	}
}

type nearbyRequest struct {
	Location *locationPayload `json:"location"`
	Severity string           `json:"severity"`
}

// FindNearbyHospitals handles POST /api/health/hospitals/nearby
func (h *HealthHandler) FindNearbyHospitals(w http.ResponseWriter, r *http.Request) {
	var payload nearbyRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	location, err := requireLocation(payload.Location, "Location")
	if err != nil {
		respondWithAppError(w, r, err, "invalid location")
		return
	}

	severity := entities.SeverityMedium
	switch s := entities.Severity(strings.ToLower(strings.TrimSpace(payload.Severity))); s {
	case "":
	case entities.SeverityLow, entities.SeverityMedium, entities.SeverityHigh:
		severity = s
	default:
		respondWithError(w, http.StatusBadRequest, "severity must be low, medium or high")
		return
	}

	hospitals := h.facilities.FindNearby(r.Context(), location, severity)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals":       hospitals,
		"total_found":     len(hospitals),
		"search_location": location,
		"severity":        severity,
	})
}

// GetEmergencyContacts handles GET /api/health/emergency-contacts/{city}
func (h *HealthHandler) GetEmergencyContacts(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"city":               city,
		"emergency_contacts": services.EmergencyContacts(city),
		"national_emergency": services.NationalEmergencyNumber,
		"emergency_numbers":  services.EmergencyNumbers(),
	})
}

type directionsRequest struct {
	Origin      *locationPayload `json:"origin"`
	Destination *locationPayload `json:"destination"`
}

// GetDirections handles POST /api/health/directions
func (h *HealthHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	var payload directionsRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	origin, err := requireLocation(payload.Origin, "origin")
	if err != nil {
		respondWithAppError(w, r, err, "invalid origin")
		return
	}
	destination, err := requireLocation(payload.Destination, "destination")
	if err != nil {
		respondWithAppError(w, r, err, "invalid destination")
		return
	}

	directions, err := h.facilities.Directions(r.Context(), origin, destination)
	if err != nil {
		if errors.Is(err, services.ErrPlacesUnavailable) {
			respondWithError(w, http.StatusServiceUnavailable, "directions are not available")
			return
		}
		respondWithAppError(w, r, apperrors.NewExternalError("could not get directions", err), "could not get directions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"directions":  directions,
		"origin":      origin,
		"destination": destination,
	})
}

// GetProfile handles GET /api/health/user/{userId}/profile
func (h *HealthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		respondWithAppError(w, r, err, "failed to load profile")
		return
	}

	var body interface{} = map[string]interface{}{}
	if profile != nil {
		body = profile
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"profile": body,
	})
}

// UpdateProfile handles POST /api/health/user/{userId}/profile
func (h *HealthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}

	var patch entities.ProfilePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if patch.Name == nil && patch.Age == nil && patch.Email == nil && patch.Phone == nil {
		respondWithError(w, http.StatusBadRequest, "No profile data provided")
		return
	}

	profile, err := h.profiles.Update(r.Context(), userID, patch)
	if err != nil {
		respondWithAppError(w, r, err, "failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user_id": userID,
		"profile": profile,
	})
}

// GetMedicalHistory handles GET /api/health/user/{userId}/medical-history
func (h *HealthHandler) GetMedicalHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}

	entries, err := h.history.MedicalHistory(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err, "failed to load medical history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"medical_history": entries,
		"total_entries":   len(entries),
	})
}

// GetHealthTips handles GET /api/health/health-tips
func (h *HealthHandler) GetHealthTips(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	if category == "" {
		category = "general"
	}
	lang := languageParam(r.URL.Query().Get("language"))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"language": lang,
		"tips":     services.HealthTips(category, lang),
	})
}

// GetCommonSymptoms handles GET /api/health/symptoms/common
func (h *HealthHandler) GetCommonSymptoms(w http.ResponseWriter, r *http.Request) {
	lang := languageParam(r.URL.Query().Get("language"))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"symptoms": services.CommonSymptoms(lang),
	})
}
