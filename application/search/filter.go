package search

import (
	"strings"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
)

// AssignSequentialIDs gives every scraped listing a 1-based id in received
// order. Ids are stable for the lifetime of one request; later stages use
// them to re-associate the oracle's verdict with the original listings.
func AssignSequentialIDs(listings []model.RawListing) []model.RawListing {
	out := make([]model.RawListing, len(listings))
	for i, l := range listings {
		l.ID = i + 1
		out[i] = l
	}
	return out
}

// FilterByKeywords is the cheap deterministic relevance gate that runs before
// the oracle call: it keeps a listing only when enough query tokens appear as
// substrings of its (lowercased) title. Order is preserved.
func FilterByKeywords(query string, listings []model.RawListing) []model.RawListing {
	tokens := queryTokens(query)
	// A tokenless query still requires one match, so nothing can pass.
	required := requiredMatches(tokens)

	kept := make([]model.RawListing, 0, len(listings))
	for _, l := range listings {
		if countTokenMatches(tokens, l.Name) >= required {
			kept = append(kept, l)
		}
	}
	return kept
}

func queryTokens(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func requiredMatches(tokens []string) int {
	if len(tokens) >= constant.MultiTokenThreshold {
		return constant.MinKeywordMatches
	}
	return constant.SingleTokenMatches
}

func countTokenMatches(tokens []string, title string) int {
	lowered := strings.ToLower(title)
	matches := 0
	for _, tok := range tokens {
		if strings.Contains(lowered, tok) {
			matches++
		}
	}
	return matches
}

// SimplifyForOracle projects listings down to the minimal identification
// records the oracle is allowed to see. Prices and URLs never leave the
// process. Units are only relevant when the oracle is asked to group by
// variant.
func SimplifyForOracle(listings []model.RawListing, mode constant.AnalysisMode) []model.OracleCandidate {
	candidates := make([]model.OracleCandidate, 0, len(listings))
	for _, l := range listings {
		c := model.OracleCandidate{
			ID:   l.ID,
			Name: l.Name,
		}
		if mode == constant.ModeGrouped {
			c.Unit = l.Unit
		}
		candidates = append(candidates, c)
	}
	return candidates
}
