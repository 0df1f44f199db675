package repository

import (
	"context"

	"agri-advice/internal/domain/entities"
)

// HistoryRepository persists advice interactions. Entries are owned by the
// user that created them; DeleteOwned must not reveal whether a mismatching
// id exists at all.
type HistoryRepository interface {
	Insert(ctx context.Context, entry entities.AdviceHistory) error
	ListByUser(ctx context.Context, userID string, offset, limit int64) ([]entities.AdviceHistory, int64, error)
	DeleteOwned(ctx context.Context, userID, id string) (bool, error)
}

// ProfileRepository stores one FarmProfile per user.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (entities.FarmProfile, error)
	Upsert(ctx context.Context, profile entities.FarmProfile) (entities.FarmProfile, error)
}
