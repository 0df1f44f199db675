package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"agri-advice/internal/domain/dto"
	Iservices "agri-advice/internal/domain/interfaces/services"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/middleware"
)

type ProfileHandlers struct {
	Logger         *logger.Logger
	ProfileService Iservices.IProfileService
}

func NewProfileHandlers(log *logger.Logger, profileService Iservices.IProfileService) *ProfileHandlers {
	return &ProfileHandlers{Logger: log, ProfileService: profileService}
}

// GetProfile returns the farm profile for the user id in the path.
func (h *ProfileHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := h.ProfileService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpsertProfile creates or updates the caller's farm profile. Absent fields
// keep their stored values.
func (h *ProfileHandlers) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var input dto.ProfileUpsert
	if err := decodeJSONBody(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	userID := middleware.Identity(r.Context())
	profile, err := h.ProfileService.Upsert(r.Context(), userID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Logger.Info(fmt.Sprintf("Profile saved for user %s", userID))
	writeJSON(w, http.StatusOK, profile)
}
