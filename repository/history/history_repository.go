package history

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/minhqn/price-intel/model"
)

type SQL struct {
	conn *sqlx.DB
}

// HistoryRepository persists price observations after a successful run and
// serves the per-query trend view. The pipeline itself never reads from it.
type HistoryRepository interface {
	SaveAnalysis(ctx context.Context, analysis *model.MarketAnalysis, capturedAt time.Time) error
	ListByQuery(ctx context.Context, query string, limit int) ([]model.PriceHistoryEntry, error)
}

func NewHistoryRepository(conn *sqlx.DB) HistoryRepository {
	return &SQL{conn: conn}
}

const (
	insertEntry = `INSERT INTO price_history (query, store_name, product_title, price, original_price, unit, url, captured_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	listByQuery = `SELECT id, query, store_name, product_title, price, original_price, unit, url, captured_at
FROM price_history
WHERE query = ?
ORDER BY captured_at DESC, id DESC
LIMIT ?`
)

func (s *SQL) SaveAnalysis(ctx context.Context, analysis *model.MarketAnalysis, capturedAt time.Time) error {
	points := analysis.AllPricePoints()
	if len(points) == 0 {
		return nil
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range points {
		if _, err := tx.ExecContext(ctx, insertEntry,
			analysis.Query, p.StoreName, p.ProductTitle, p.Price, p.OriginalPrice, p.Unit, p.URL, capturedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQL) ListByQuery(ctx context.Context, query string, limit int) ([]model.PriceHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.conn.QueryxContext(ctx, listByQuery, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.PriceHistoryEntry, 0)
	for rows.Next() {
		var e model.PriceHistoryEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
