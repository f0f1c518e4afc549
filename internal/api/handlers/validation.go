package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

const (
	maxJSONBodyBytes  = 1 << 20
	maxMessageLength  = 1000
	defaultHistoryMax = 50
)

type locationPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// validateLocation accepts a nil payload as "no location".
func validateLocation(p *locationPayload) (*entities.Location, error) {
	if p == nil {
		return nil, nil
	}
	if p.Lat == nil {
		return nil, apperrors.NewValidationError("Missing coordinate: lat")
	}
	if p.Lng == nil {
		return nil, apperrors.NewValidationError("Missing coordinate: lng")
	}
	if *p.Lat < -90 || *p.Lat > 90 {
		return nil, apperrors.NewValidationError("Invalid latitude range")
	}
	if *p.Lng < -180 || *p.Lng > 180 {
		return nil, apperrors.NewValidationError("Invalid longitude range")
	}
	return &entities.Location{Latitude: *p.Lat, Longitude: *p.Lng}, nil
}

// requireLocation is validateLocation for endpoints where the field is mandatory.
func requireLocation(p *locationPayload, field string) (entities.Location, error) {
	if p == nil {
		return entities.Location{}, apperrors.NewValidationError(field + " is required")
	}
	loc, err := validateLocation(p)
	if err != nil {
		return entities.Location{}, err
	}
	return *loc, nil
}

func validateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperrors.NewValidationError("Message cannot be empty")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return "", apperrors.NewValidationError(fmt.Sprintf("Message too long (max %d characters)", maxMessageLength))
	}
	return message, nil
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if !services.ValidUserID(userID) {
		return apperrors.NewValidationError("Invalid user_id format")
	}
	return nil
}

// queryInt reads a positive integer query parameter, clamped to max.
func queryInt(r *http.Request, name string, fallback, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}

// languageParam resolves a language name or code, defaulting to english.
func languageParam(value string) entities.Language {
	lang, _ := entities.ParseLanguage(strings.ToLower(strings.TrimSpace(value)))
	return lang
}

func validationError(message string) error {
	return apperrors.NewValidationError(message)
}
