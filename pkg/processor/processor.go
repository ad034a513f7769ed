package processor

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	parser2 "github.com/skynet2/moneymate-scraper/pkg/parser"
	"github.com/skynet2/moneymate-scraper/pkg/quarantine"
)

const defaultConcurrency = 4

// Processor drives one scrape batch: fetch receipts from the mailbox, parse
// them in parallel, quarantine malformed ones and submit the rest, skipping
// anything already submitted in a previous run.
type Processor struct {
	mailbox          Mailbox
	parser           Parser
	submitter        Submitter
	quarantineStore  Quarantine
	duplicateCleaner DuplicateCleaner
	opts             Options
}

func NewProcessor(
	mailbox Mailbox,
	parser Parser,
	submitter Submitter,
	quarantineStore Quarantine,
	duplicateCleaner DuplicateCleaner,
	opts Options,
) *Processor {
	return &Processor{
		mailbox:          mailbox,
		parser:           parser,
		submitter:        submitter,
		quarantineStore:  quarantineStore,
		duplicateCleaner: duplicateCleaner,
		opts:             opts,
	}
}

// Run processes one batch. Per-message failures are recorded in the summary
// and never abort the batch; only a mailbox failure returns an error.
func (p *Processor) Run(ctx context.Context) (*RunSummary, error) {
	messages, err := p.mailbox.FetchReceipts(ctx, p.opts.Query, p.opts.MaxResults)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		Fetched:  len(messages),
		Outcomes: make([]parser2.Outcome, len(messages)),
	}

	concurrency := p.opts.Concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	pool := workerpool.New(concurrency)

	var mut sync.Mutex

	for i, msg1 := range messages {
		index := i
		msgCopy := msg1

		pool.Submit(func() {
			outcome := p.parser.Parse(msgCopy)

			mut.Lock()
			summary.Outcomes[index] = outcome
			mut.Unlock()
		})
	}

	pool.StopWait()

	subjects := map[string]string{}
	for _, msg1 := range messages {
		subjects[msg1.ID] = msg1.Subject()
	}

	for _, outcome := range summary.Outcomes {
		switch outcome.Kind {
		case parser2.OutcomeUnrecognized:
			summary.Unrecognized++
		case parser2.OutcomeMalformed:
			summary.Malformed++

			p.quarantine(ctx, summary, outcome, subjects[outcome.EmailID])
		case parser2.OutcomeParsed:
			summary.Parsed++

			if err = p.submit(ctx, summary, outcome); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).
					Str("email_id", outcome.EmailID).
					Msg("failed to submit transaction")

				summary.Errors = append(summary.Errors, err)
			}
		}
	}

	zerolog.Ctx(ctx).Info().
		Int("fetched", summary.Fetched).
		Int("parsed", summary.Parsed).
		Int("unrecognized", summary.Unrecognized).
		Int("malformed", summary.Malformed).
		Int("duplicates", summary.Duplicates).
		Int("submitted", summary.Submitted).
		Int("errors", len(summary.Errors)).
		Msg("batch finished")

	return summary, nil
}

func (p *Processor) quarantine(
	ctx context.Context,
	summary *RunSummary,
	outcome parser2.Outcome,
	rawSubject string,
) {
	reason := ""
	if outcome.Reason != nil {
		reason = outcome.Reason.Error()
	}

	zerolog.Ctx(ctx).Warn().
		Str("email_id", outcome.EmailID).
		Str("source", string(outcome.Source)).
		Str("reason", reason).
		Msg("quarantining malformed message")

	if p.opts.DryRun {
		return
	}

	err := p.quarantineStore.Add(ctx, quarantine.Record{
		ID:         uuid.NewString(),
		EmailID:    outcome.EmailID,
		Source:     outcome.Source,
		Reason:     reason,
		RawSubject: rawSubject,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("email_id", outcome.EmailID).
			Msg("failed to quarantine message")

		summary.Errors = append(summary.Errors, err)
	}
}

func (p *Processor) submit(
	ctx context.Context,
	summary *RunSummary,
	outcome parser2.Outcome,
) error {
	tx := outcome.Transaction

	isDuplicate, err := p.duplicateCleaner.IsDuplicate(ctx, tx.DeduplicationKey(), tx.Source)
	if err != nil {
		return err
	}

	if isDuplicate {
		summary.Duplicates++

		zerolog.Ctx(ctx).Info().
			Str("email_id", outcome.EmailID).
			Str("source", string(tx.Source)).
			Msg("skipping duplicate transaction")

		return nil
	}

	if p.opts.DryRun {
		return nil
	}

	if err = p.submitter.CreateTransaction(ctx, tx); err != nil {
		return err
	}

	if err = p.duplicateCleaner.AddDuplicateKey(ctx, tx.DeduplicationKey(), tx.Source); err != nil {
		return err
	}

	summary.Submitted++

	return nil
}
