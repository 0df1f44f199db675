package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	Iservices "agri-advice/internal/domain/interfaces/services"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/middleware"
)

type HistoryHandlers struct {
	Logger         *logger.Logger
	HistoryService Iservices.IHistoryService
}

func NewHistoryHandlers(log *logger.Logger, historyService Iservices.IHistoryService) *HistoryHandlers {
	return &HistoryHandlers{Logger: log, HistoryService: historyService}
}

// ListHistory returns one page of the caller's advice history, newest first.
func (h *HistoryHandlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.Identity(r.Context())
	offset := parseQueryInt(r, "offset", 0)
	limit := parseQueryInt(r, "limit", 10)

	page, err := h.HistoryService.List(r.Context(), userID, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Logger.Info(fmt.Sprintf("History fetched for user %s, offset %d, limit %d", userID, offset, limit))
	writeJSON(w, http.StatusOK, page)
}

// DeleteHistory removes one of the caller's entries by id. A foreign or
// unknown id answers 404 without revealing which.
func (h *HistoryHandlers) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.Identity(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.HistoryService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	h.Logger.Info(fmt.Sprintf("History %s deleted for user %s", id, userID))
	writeJSON(w, http.StatusOK, map[string]string{"message": "History deleted successfully"})
}

func parseQueryInt(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
