package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.GetLogger().Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps typed errors to a status. Internal details are
// never echoed to the client.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	appErr, ok := apperrors.As(err)
	if !ok {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		respondWithError(w, http.StatusInternalServerError, fallback)
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		respondWithError(w, status, fallback)
		return
	}
	respondWithError(w, status, appErr.Message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
