package model

// RawListing is one scraped offer as returned by the collector backend,
// plus the sequential ID assigned on ingestion. It lives only for the
// duration of a single search request.
type RawListing struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Source        string   `json:"source"`
	OriginalPrice *float64 `json:"originalPrice"`
	DiscountPrice *float64 `json:"discountPrice"`
	Unit          string   `json:"unit,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	URL           string   `json:"url,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// EffectivePrice resolves the price a buyer would actually pay: the
// discount price when one exists, otherwise the original price. The second
// return is false when the listing carries no price at all.
func (r RawListing) EffectivePrice() (float64, bool) {
	if r.DiscountPrice != nil {
		return *r.DiscountPrice, true
	}
	if r.OriginalPrice != nil {
		return *r.OriginalPrice, true
	}
	return 0, false
}

// PricePoint is a normalized offer ready for display or export. Price is a
// plain number so tabular exporters can consume it directly.
type PricePoint struct {
	StoreName     string   `json:"storeName"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Currency      string   `json:"currency"`
	ProductTitle  string   `json:"productTitle"`
	URL           string   `json:"url,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
}

// SearchRequest is the transport-level search payload.
type SearchRequest struct {
	Query       string `json:"query" validate:"required,min=1"`
	NumProducts int    `json:"num_products" validate:"omitempty,gte=1,lte=50"`
}

// BatchRequest triggers a sequential batch run over several queries.
type BatchRequest struct {
	Queries []string `json:"queries" validate:"required,min=1,dive,required"`
}

type BatchResponse struct {
	JobID string `json:"job_id"`
}
