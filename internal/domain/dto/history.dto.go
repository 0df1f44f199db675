package dto

import "agri-advice/internal/domain/entities"

// HistoryPage is one page of a user's advice history, newest first.
type HistoryPage struct {
	Histories []entities.AdviceHistory `json:"histories"`
	Total     int64                    `json:"total"`
	Offset    int64                    `json:"offset"`
	Limit     int64                    `json:"limit"`
}
