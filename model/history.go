package model

import "time"

// PriceHistoryEntry is one persisted price observation, used for the
// per-query trend view.
type PriceHistoryEntry struct {
	ID            uint64    `db:"id" json:"id"`
	Query         string    `db:"query" json:"query"`
	StoreName     string    `db:"store_name" json:"store_name"`
	ProductTitle  string    `db:"product_title" json:"product_title"`
	Price         float64   `db:"price" json:"price"`
	OriginalPrice *float64  `db:"original_price" json:"original_price,omitempty"`
	Unit          string    `db:"unit" json:"unit,omitempty"`
	URL           string    `db:"url" json:"url,omitempty"`
	CapturedAt    time.Time `db:"captured_at" json:"captured_at"`
}

type PriceHistoryResponse struct {
	Query   string              `json:"query"`
	Entries []PriceHistoryEntry `json:"entries"`
}
