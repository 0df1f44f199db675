package Iservices

import (
	"context"

	"agri-advice/internal/domain/dto"
)

type IAdviceService interface {
	ProcessQuery(ctx context.Context, query dto.AdviceQuery) (dto.AdviceResult, error)
	Synthesize(ctx context.Context, text, language string) (string, error)
}
