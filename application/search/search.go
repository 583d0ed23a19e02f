package search

import (
	"context"
	"fmt"
	"time"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	collectorRepo "github.com/minhqn/price-intel/repository/collector"
	oracleRepo "github.com/minhqn/price-intel/repository/oracle"
	"github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/logger"
	"go.uber.org/zap"
)

// SearchApp runs the full normalization pipeline for one query:
// collect -> assign ids -> keyword filter -> oracle verdict -> aggregate ->
// assemble. Every invocation is independent; nothing is shared or cached
// across requests.
type SearchApp interface {
	Analyze(ctx context.Context, query string, numProducts int) (*model.MarketAnalysis, error)
}

type searchAppImpl struct {
	collectorRepo collectorRepo.CollectorRepository
	oracleRepo    oracleRepo.OracleRepository
	mode          constant.AnalysisMode
	numProducts   int
}

func NewSearchApp(collector collectorRepo.CollectorRepository, oracle oracleRepo.OracleRepository, mode constant.AnalysisMode, numProducts int) SearchApp {
	if numProducts <= 0 {
		numProducts = constant.DefaultNumProducts
	}
	return &searchAppImpl{
		collectorRepo: collector,
		oracleRepo:    oracle,
		mode:          mode,
		numProducts:   numProducts,
	}
}

func (s *searchAppImpl) Analyze(ctx context.Context, query string, numProducts int) (*model.MarketAnalysis, error) {
	if numProducts <= 0 {
		numProducts = s.numProducts
	}

	raw, err := s.collectorRepo.Search(ctx, query, numProducts)
	if err != nil {
		logger.Error("[Analyze] err collectorRepo.Search", zap.String("query", query), zap.String("error", err.Error()))
		return nil, errors.WrapCustomError(constant.ErrUpstreamUnavailable, err)
	}

	listings := AssignSequentialIDs(raw)
	filtered := FilterByKeywords(query, listings)
	logger.Info("[Analyze] keyword filter applied",
		zap.String("query", query),
		zap.Int("collected", len(listings)),
		zap.Int("kept", len(filtered)),
	)

	// Nothing relevant to classify: an empty result is a valid outcome,
	// not a failure, and there is no point paying for an oracle call.
	if len(filtered) == 0 {
		return s.assemble(query, "", nil, nil), nil
	}

	candidates := SimplifyForOracle(filtered, s.mode)
	verdict, err := s.oracleRepo.Classify(ctx, query, candidates)
	if err != nil {
		logger.Error("[Analyze] err oracleRepo.Classify", zap.String("query", query), zap.String("error", err.Error()))
		if _, ok := err.(errors.CustomError); ok {
			return nil, err
		}
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}

	if s.mode == constant.ModeGrouped {
		variants := BuildVariants(verdict.Groups, listings)
		return s.assemble(query, verdict.Summary, nil, variants), nil
	}

	products := MapValidIDs(verdict.ValidIDs, listings)
	return s.assemble(query, verdict.Summary, products, nil), nil
}

// assemble is the terminal shape-construction step: query as the caller
// typed it, the summary (or the templated fallback), whichever product
// representation the mode produces, and a fresh timestamp.
func (s *searchAppImpl) assemble(query, summary string, products []model.PricePoint, variants []model.ProductVariant) *model.MarketAnalysis {
	analysis := &model.MarketAnalysis{
		Query:       query,
		Products:    products,
		Variants:    variants,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if s.mode == constant.ModeFlat && analysis.Products == nil {
		analysis.Products = []model.PricePoint{}
	}
	if s.mode == constant.ModeGrouped && analysis.Variants == nil {
		analysis.Variants = []model.ProductVariant{}
	}

	if summary == "" {
		summary = fmt.Sprintf("Tìm thấy %d sản phẩm cho %s.", analysis.TotalItems(), query)
	}
	analysis.SearchSummary = summary
	return analysis
}
