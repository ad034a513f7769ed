package processor

import (
	parser2 "github.com/skynet2/moneymate-scraper/pkg/parser"
)

// Options are the per-run knobs. Zero values fall back to safe defaults in
// Run, so an empty Options is usable.
type Options struct {
	Query       string
	MaxResults  int64
	Concurrency int
	DryRun      bool
}

// RunSummary is the accounting of one batch. Counters cover every fetched
// message exactly once except Duplicates and Submitted, which subdivide
// Parsed.
type RunSummary struct {
	Fetched      int
	Parsed       int
	Unrecognized int
	Malformed    int
	Duplicates   int
	Submitted    int

	Outcomes []parser2.Outcome
	Errors   []error
}
