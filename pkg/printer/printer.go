package printer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/skynet2/moneymate-scraper/pkg/database"
	parser2 "github.com/skynet2/moneymate-scraper/pkg/parser"
	"github.com/skynet2/moneymate-scraper/pkg/processor"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Commit(
	ctx context.Context,
	summary *processor.RunSummary,
) string {
	return p.Dry(ctx, summary)
}

func (p *Printer) Dry(
	ctx context.Context,
	summary *processor.RunSummary,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(ctx, summary))
	sb.WriteString("\n\n")

	for _, outcome := range summary.Outcomes {
		if outcome.Kind != parser2.OutcomeParsed {
			continue
		}

		p.FancyPrintTx(outcome.Transaction, &sb)
	}

	return sb.String()
}

func (p *Printer) Errors(
	_ context.Context,
	summary *processor.RunSummary,
) string {
	var errCount int
	var sb strings.Builder

	for _, err := range summary.Errors {
		sb.WriteString(fmt.Sprintf("Error: %s\n", err))

		errCount += 1
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Kind != parser2.OutcomeMalformed {
			continue
		}

		sb.WriteString(fmt.Sprintf("Malformed: ❌ %s (%s): %s\n",
			outcome.EmailID, outcome.Source, outcome.Reason))

		errCount += 1
	}

	if errCount == 0 {
		sb.WriteString("No errors.")
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	summary *processor.RunSummary,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total messages: %v", summary.Fetched))
	sb.WriteString(fmt.Sprintf("\nParsed: %v 🔥", summary.Parsed))
	sb.WriteString(fmt.Sprintf("\nUnrecognized: %v 📭", summary.Unrecognized))
	sb.WriteString(fmt.Sprintf("\nMalformed: %v 🚒", summary.Malformed))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", summary.Duplicates))
	sb.WriteString(fmt.Sprintf("\nSubmitted: %v ✅", summary.Submitted))
	sb.WriteString(fmt.Sprintf("\nErrors: %v 🚨", len(summary.Errors)))

	parsedBySource := lo.CountValuesBy(
		lo.Filter(summary.Outcomes, func(outcome parser2.Outcome, _ int) bool {
			return outcome.Kind == parser2.OutcomeParsed
		}),
		func(outcome parser2.Outcome) string {
			return string(outcome.Source)
		})

	sources := lo.Keys(parsedBySource)
	sort.Strings(sources)

	for _, source := range sources {
		sb.WriteString(fmt.Sprintf("\n  %s: %v", source, parsedBySource[source]))
	}

	if summary.Parsed == summary.Fetched && len(summary.Errors) == 0 && summary.Fetched > 0 {
		sb.WriteString("\n\nAll messages parsed! 🎉")
	}

	return sb.String()
}

func (p *Printer) FancyPrintTx(tx *database.Transaction, sb *strings.Builder) {
	sb.WriteString(fmt.Sprintf("Source: %v", tx.Source))
	sb.WriteString(fmt.Sprintf("\nDate: %s", tx.Date.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("\nAmount: %v %v", tx.Amount.Amount.StringFixed(2), tx.Amount.Currency))
	sb.WriteString(fmt.Sprintf("\nDescription: %s", tx.Description))

	if tx.RawSubject != "" {
		sb.WriteString(fmt.Sprintf("\nSubject: %s", tx.RawSubject))
	}

	sb.WriteString("\n\n")
}
