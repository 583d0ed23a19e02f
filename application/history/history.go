package history

import (
	"context"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	historyRepo "github.com/minhqn/price-intel/repository/history"
	"github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/logger"
	"go.uber.org/zap"
)

type HistoryApp interface {
	ListByQuery(ctx context.Context, query string, limit int) (*model.PriceHistoryResponse, error)
}

type historyAppImpl struct {
	historyRepo historyRepo.HistoryRepository
}

func NewHistoryApp(historyRepo historyRepo.HistoryRepository) HistoryApp {
	return &historyAppImpl{historyRepo: historyRepo}
}

func (s *historyAppImpl) ListByQuery(ctx context.Context, query string, limit int) (*model.PriceHistoryResponse, error) {
	if limit <= 0 {
		limit = 100
	}

	entries, err := s.historyRepo.ListByQuery(ctx, query, limit)
	if err != nil {
		logger.Error("[ListByQuery] err historyRepo.ListByQuery", zap.String("error", err.Error()))
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}

	return &model.PriceHistoryResponse{
		Query:   query,
		Entries: entries,
	}, nil
}
