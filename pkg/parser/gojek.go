package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/moneymate-scraper/pkg/common"
	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// jakartaTime is the zone applied to vendor dates that omit one. A fixed
// offset keeps parsing independent of the host tzdata.
var jakartaTime = time.FixedZone("WIB", 7*60*60)

// Gojek receipts are plaintext with one labeled total line, a trip line and
// a bare date line like "12 Jan 2024, 14:30".
type Gojek struct {
}

func NewGojek() *Gojek {
	return &Gojek{}
}

func (g *Gojek) Source() database.TransactionSource {
	return database.SourceGojek
}

func (g *Gojek) Profile() Profile {
	return Profile{
		Locale:          LocaleIndonesian,
		DefaultCurrency: "IDR",
		Timezone:        jakartaTime,
		DateLayouts: []string{
			"2 Jan 2006, 15:04",
			"2 January 2006, 15:04",
		},
		DayFirst: true,
	}
}

var (
	gojekDateLine = regexp.MustCompile(`^\d{1,2} [A-Za-z]+ \d{4}, \d{1,2}:\d{2}$`)
	gojekTripLine = regexp.MustCompile(`(?i)^(trip with .+|order from .+)$`)
)

func (g *Gojek) Extract(msg *RawMessage) (*Fields, error) {
	lines := bodyLines(msg)
	if len(lines) == 0 {
		return nil, errors.Wrap(common.ErrTemplateMismatch, "no readable body")
	}

	amountText, ok := labeledValue(lines, "Total")
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "amount")
	}

	dateText := ""
	for _, line := range lines {
		if gojekDateLine.MatchString(line) {
			dateText = line
			break
		}
	}
	if dateText == "" {
		return nil, errors.Wrap(common.ErrFieldMissing, "date")
	}

	description := ""
	for _, line := range lines {
		if gojekTripLine.MatchString(line) {
			description = line
			break
		}
	}
	if description == "" {
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
