package constant

// AnalysisMode selects which shape the oracle is asked for and which side of
// MarketAnalysis gets populated. It is fixed at startup, not per request.
type AnalysisMode string

const (
	ModeFlat    AnalysisMode = "flat"
	ModeGrouped AnalysisMode = "grouped"
)

const (
	// Currency is fixed for this market; no conversion anywhere.
	Currency = "VND"

	// DefaultNumProducts is how many listings we ask the collector for
	// when the caller doesn't say.
	DefaultNumProducts = 10

	// MinKeywordMatches / SingleTokenMatches drive the pre-filter: queries
	// with two or more tokens must match at least two of them, single-token
	// queries must match the one.
	MinKeywordMatches   = 2
	SingleTokenMatches  = 1
	MultiTokenThreshold = 2
)

// Batch job states stored in redis.
const (
	JobStatusQueued  = "queued"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)
