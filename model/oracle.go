package model

// OracleCandidate is the minimal projection of a listing given to the
// semantic oracle: never the price, never the URL.
type OracleCandidate struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// OracleGroup is one variant cluster in a grouped-mode verdict.
type OracleGroup struct {
	Name        string
	Description string
	MemberIDs   []int
}

// OracleVerdict is the oracle's parsed reply in either mode. ValidIDs is set
// in flat mode, Groups in grouped mode. IDs are untrusted: the aggregator
// drops any that don't map back to a submitted listing.
type OracleVerdict struct {
	ValidIDs []int
	Groups   []OracleGroup
	Summary  string
}
