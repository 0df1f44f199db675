package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/domain/entities"
	"agri-advice/internal/domain/interfaces/repository"
	"agri-advice/internal/infra/logger"
)

// HistoryService is the service responsible for advice history business logic.
type HistoryService struct {
	HistoryRepository repository.HistoryRepository
	Logger            *logger.Logger
}

// NewHistoryService creates a new instance of the service.
func NewHistoryService(historyRepository repository.HistoryRepository, log *logger.Logger) *HistoryService {
	return &HistoryService{
		HistoryRepository: historyRepository,
		Logger:            log,
	}
}

// Record persists one interaction. Callers treat the returned error as
// advisory: the advice flow must succeed even when logging fails.
func (hs *HistoryService) Record(ctx context.Context, userID, query, response string) error {
	entry := entities.AdviceHistory{
		UserID:    userID,
		Query:     query,
		Response:  response,
		QueriedAt: time.Now().UTC(),
	}

	if err := hs.HistoryRepository.Insert(ctx, entry); err != nil {
		hs.Logger.Error(fmt.Sprintf("Failed to save advice history for user %s: %v", userID, err))
		return apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "failed to save history")
	}
	return nil
}

// List returns one page of the user's history, newest first. An offset past
// the end yields an empty page with the correct total.
func (hs *HistoryService) List(ctx context.Context, userID string, offset, limit int64) (dto.HistoryPage, error) {
	entries, total, err := hs.HistoryRepository.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		hs.Logger.Error(fmt.Sprintf("Failed to fetch history for user %s: %v", userID, err))
		return dto.HistoryPage{}, apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "Failed to fetch history")
	}

	return dto.HistoryPage{
		Histories: entries,
		Total:     total,
		Offset:    offset,
		Limit:     limit,
	}, nil
}

// Delete removes one entry by id when it belongs to userID. A foreign or
// missing entry yields the same not-found answer so entry existence does not
// leak across users.
func (hs *HistoryService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := hs.HistoryRepository.DeleteOwned(ctx, userID, id)
	if err != nil {
		hs.Logger.Error(fmt.Sprintf("Failed to delete history %s for user %s: %v", id, userID, err))
		return apperr.Wrap(err, apperr.KindStorageError, http.StatusInternalServerError, "Failed to delete history")
	}
	if !deleted {
		return apperr.New(apperr.KindNotFoundOrForbidden, http.StatusNotFound, "History not found or not authorized")
	}
	return nil
}
