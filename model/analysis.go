package model

// ProductVariant is a named cluster of price points the oracle judged to be
// the same product configuration (size, pack, origin...). Items are sorted by
// price ascending; the stats cover the items that survived price resolution.
type ProductVariant struct {
	VariantName  string       `json:"variantName"`
	Description  string       `json:"description"`
	AveragePrice float64      `json:"averagePrice"`
	MinPrice     float64      `json:"minPrice"`
	MaxPrice     float64      `json:"maxPrice"`
	Items        []PricePoint `json:"items"`
}

// MarketAnalysis is the final result of one pipeline run. Exactly one of
// Products and Variants is populated, depending on the configured analysis
// mode. An empty Products/Variants slice is a valid "no matches" outcome,
// not an error.
type MarketAnalysis struct {
	Query         string           `json:"query"`
	SearchSummary string           `json:"searchSummary"`
	Products      []PricePoint     `json:"products,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	LastUpdated   string           `json:"lastUpdated"`
}

// TotalItems counts price points regardless of mode.
func (m MarketAnalysis) TotalItems() int {
	if len(m.Variants) > 0 {
		n := 0
		for _, v := range m.Variants {
			n += len(v.Items)
		}
		return n
	}
	return len(m.Products)
}

// AllPricePoints flattens whichever representation is populated, in order.
func (m MarketAnalysis) AllPricePoints() []PricePoint {
	if len(m.Variants) == 0 {
		return m.Products
	}
	points := make([]PricePoint, 0, m.TotalItems())
	for _, v := range m.Variants {
		points = append(points, v.Items...)
	}
	return points
}

// BatchJob is the redis-tracked state of one batch run.
type BatchJob struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Queries   []string `json:"queries"`
	Completed int      `json:"completed"`
	Failed    []string `json:"failed,omitempty"`
	ExportURL string   `json:"export_url,omitempty"`
	Error     string   `json:"error,omitempty"`
}
