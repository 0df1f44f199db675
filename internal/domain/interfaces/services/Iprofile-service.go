package Iservices

import (
	"context"

	"agri-advice/internal/domain/dto"
	"agri-advice/internal/domain/entities"
)

type IProfileService interface {
	Get(ctx context.Context, userID string) (entities.FarmProfile, error)
	Upsert(ctx context.Context, userID string, input dto.ProfileUpsert) (entities.FarmProfile, error)
}
