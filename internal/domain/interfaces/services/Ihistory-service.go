package Iservices

import (
	"context"

	"agri-advice/internal/domain/dto"
)

// IHistoryService defines the methods the history service must implement.
// Record returns its error so the orchestrator can log and discard it.
type IHistoryService interface {
	Record(ctx context.Context, userID, query, response string) error
	List(ctx context.Context, userID string, offset, limit int64) (dto.HistoryPage, error)
	Delete(ctx context.Context, userID, id string) error
}
