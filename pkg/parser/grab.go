package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"

	"github.com/skynet2/moneymate-scraper/pkg/common"
	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// Grab sends HTML e-receipts where labels and values sit in adjacent table
// cells, formatted in the English number locale ("IDR 150,000.00").
type Grab struct {
}

func NewGrab() *Grab {
	return &Grab{}
}

func (g *Grab) Source() database.TransactionSource {
	return database.SourceGrab
}

func (g *Grab) Profile() Profile {
	return Profile{
		Locale:          LocaleEnglish,
		DefaultCurrency: "IDR",
		Timezone:        jakartaTime,
		DateLayouts: []string{
			"02-01-2006 15:04",
			"2 Jan 2006, 15:04",
		},
		DayFirst: true,
	}
}

func (g *Grab) Extract(msg *RawMessage) (*Fields, error) {
	if strings.TrimSpace(msg.HTMLBody) == "" && strings.TrimSpace(msg.TextBody) == "" {
		return nil, errors.Wrap(common.ErrTemplateMismatch, "no readable body")
	}

	lines := bodyLines(msg)
	if len(lines) == 0 {
		return nil, errors.Wrapf(common.ErrTemplateMismatch, "body flattened to nothing: %s", spew.Sdump(msg.Headers))
	}

	amountText, ok := labeledValue(lines, "Total Paid")
	if !ok {
		amountText, ok = labeledValue(lines, "Total")
	}
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "amount")
	}

	dateText, ok := labeledValue(lines, "Date")
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "date")
	}

	description, ok := labeledValue(lines, "Trip")
	if !ok {
		description = strings.TrimSpace(msg.Subject())
	}
	if description == "" {
		return nil, errors.Wrap(common.ErrFieldMissing, "description")
	}

	return &Fields{
		Description: description,
		AmountText:  amountText,
		DateText:    dateText,
	}, nil
}
