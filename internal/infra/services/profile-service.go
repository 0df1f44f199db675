package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/domain/entities"
	"agri-advice/internal/domain/interfaces/repository"
	"agri-advice/internal/infra/logger"
	mongorepo "agri-advice/internal/infra/repository"
)

// ProfileService is the service responsible for FarmProfile business logic.
type ProfileService struct {
	ProfileRepository repository.ProfileRepository
	Logger            *logger.Logger
}

func NewProfileService(profileRepository repository.ProfileRepository, log *logger.Logger) *ProfileService {
	return &ProfileService{
		ProfileRepository: profileRepository,
		Logger:            log,
	}
}

// Get retrieves a FarmProfile by user id.
func (ps *ProfileService) Get(ctx context.Context, userID string) (entities.FarmProfile, error) {
	profile, err := ps.ProfileRepository.FindByUserID(ctx, userID)
	if errors.Is(err, mongorepo.ErrNotFound) {
		return entities.FarmProfile{}, apperr.New(apperr.KindNotFoundOrForbidden, http.StatusNotFound, "Profile not found")
	}
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to find profile for user %s: %v", userID, err))
		return entities.FarmProfile{}, apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "Failed to fetch profile")
	}
	return profile, nil
}

// Upsert creates the profile on first submission and thereafter overwrites
// only the fields a replacement value was provided for.
func (ps *ProfileService) Upsert(ctx context.Context, userID string, input dto.ProfileUpsert) (entities.FarmProfile, error) {
	profile, err := ps.ProfileRepository.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, mongorepo.ErrNotFound) {
		ps.Logger.Error(fmt.Sprintf("Failed to load profile for user %s: %v", userID, err))
		return entities.FarmProfile{}, apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "Failed to fetch profile")
	}

	profile.UserID = userID
	if input.Location != "" {
		profile.Location = input.Location
	}
	if input.SoilType != "" {
		profile.SoilType = input.SoilType
	}
	if input.Crops != nil {
		profile.Crops = input.Crops
	}

	updated, err := ps.ProfileRepository.Upsert(ctx, profile)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to upsert profile for user %s: %v", userID, err))
		return entities.FarmProfile{}, apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "Failed to save profile")
	}
	return updated, nil
}
