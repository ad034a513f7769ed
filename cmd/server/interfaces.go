package main

import (
	"context"

	"github.com/skynet2/moneymate-scraper/pkg/processor"
)

type BatchProcessor interface {
	Run(ctx context.Context) (*processor.RunSummary, error)
}

type SummaryPrinter interface {
	Stat(ctx context.Context, summary *processor.RunSummary) string
	Errors(ctx context.Context, summary *processor.RunSummary) string
}
