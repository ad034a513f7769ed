package parser

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// Profile carries a vendor's static parsing hints: how it formats numbers,
// which currency it implies when none is printed, which timezone its
// zone-less dates are in and which date layouts its templates use.
// Conventions are configuration, never guessed per message.
type Profile struct {
	Locale          NumberLocale
	DefaultCurrency string
	Timezone        *time.Location
	DateLayouts     []string
	DayFirst        bool
}

// Extractor locates the raw transaction fields inside one vendor's known
// message template. A changed template must fail with a template mismatch
// rather than produce silently wrong data.
type Extractor interface {
	Source() database.TransactionSource
	Profile() Profile
	Extract(msg *RawMessage) (*Fields, error)
}

// Pipeline turns one raw message into at most one transaction. It is a pure
// function of the message and the static extractor table and is safe to call
// concurrently.
type Pipeline struct {
	extractors map[database.TransactionSource]Extractor
	now        func() time.Time
}

func NewPipeline() *Pipeline {
	p := &Pipeline{
		extractors: map[database.TransactionSource]Extractor{},
		now:        time.Now,
	}

	for _, e := range []Extractor{
		NewGojek(),
		NewGrab(),
		NewBCA(),
		NewMandiri(),
	} {
		p.extractors[e.Source()] = e
	}

	return p
}

func (p *Pipeline) Parse(msg *RawMessage) Outcome {
	source := Classify(msg)
	if source == database.SourceUnknown {
		return Outcome{
			Kind:    OutcomeUnrecognized,
			EmailID: msg.ID,
			Source:  source,
		}
	}

	extractor, ok := p.extractors[source]
	if !ok {
		return p.malformed(msg, source, errors.Newf("no extractor registered for source %s", source))
	}

	fields, err := extractor.Extract(msg)
	if err != nil {
		return p.malformed(msg, source, err)
	}

	profile := extractor.Profile()

	currency := fields.CurrencyHint
	if currency == "" {
		currency = profile.DefaultCurrency
	}

	amount, err := ParseAmount(fields.AmountText, profile.Locale, currency)
	if err != nil {
		return p.malformed(msg, source, err)
	}

	date, err := ParseDate(fields.DateText, profile.DateLayouts, profile.Timezone, profile.DayFirst)
	if err != nil {
		return p.malformed(msg, source, err)
	}

	tx := &database.Transaction{
		ID:          uuid.NewString(),
		Source:      source,
		Description: strings.TrimSpace(fields.Description),
		Amount:      amount,
		Date:        date,
		EmailID:     msg.ID,
		RawSubject:  msg.Subject(),
	}

	if err = tx.Validate(p.now()); err != nil {
		return p.malformed(msg, source, err)
	}

	return Outcome{
		Kind:        OutcomeParsed,
		EmailID:     msg.ID,
		Source:      source,
		Transaction: tx,
	}
}

func (p *Pipeline) malformed(msg *RawMessage, source database.TransactionSource, reason error) Outcome {
	return Outcome{
		Kind:    OutcomeMalformed,
		EmailID: msg.ID,
		Source:  source,
		Reason:  errors.Wrapf(reason, "message %s", msg.ID),
	}
}
