package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
)

func decodeJSONBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError renders the shared {error, details?} envelope with the status
// carried by the error, defaulting to 500 for untyped failures.
func writeError(w http.ResponseWriter, err error) {
	message := "Internal server error"
	var details any

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Provider != "" {
			details = map[string]string{"provider": appErr.Provider}
		}
	}

	writeJSON(w, apperr.StatusOf(err), dto.ErrorResponse{Error: message, Details: details})
}
