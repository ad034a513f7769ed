package parser

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/skynet2/moneymate-scraper/pkg/common"
	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// NumberLocale names the grouping and decimal separators a vendor formats
// amounts with. The same glyph means opposite things across locales, so the
// convention is supplied per vendor instead of guessed from the string.
type NumberLocale struct {
	GroupSep   rune
	DecimalSep rune
}

var (
	// LocaleIndonesian formats amounts like "150.000,00".
	LocaleIndonesian = NumberLocale{GroupSep: '.', DecimalSep: ','}
	// LocaleEnglish formats amounts like "150,000.00".
	LocaleEnglish = NumberLocale{GroupSep: ',', DecimalSep: '.'}
)

// currencySymbols maps vendor-visible symbols to ISO codes. Longer symbols
// must be checked before their prefixes.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"Rp.", "IDR"},
	{"Rp", "IDR"},
	{"S$", "SGD"},
	{"RM", "MYR"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₫", "VND"},
	{"฿", "THB"},
}

var isoCodeRegex = regexp.MustCompile(`^[A-Z]{3}\b`)

// ParseAmount converts a vendor-formatted monetary string into Money.
// fallbackCurrency applies when the text carries neither a symbol nor an ISO
// code. Errors distinguish a missing amount, an unparseable amount and an
// invalid currency.
func ParseAmount(text string, locale NumberLocale, fallbackCurrency string) (database.Money, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return database.Money{}, errors.Wrap(common.ErrAmountNotFound, "empty amount text")
	}

	currency := ""

	for _, sym := range currencySymbols {
		if strings.HasPrefix(text, sym.symbol) {
			currency = sym.code
			text = strings.TrimSpace(text[len(sym.symbol):])
			break
		}
	}

	if currency == "" {
		if code := isoCodeRegex.FindString(text); code != "" {
			currency = code
			text = strings.TrimSpace(text[len(code):])
		}
	}

	if currency == "" {
		currency = fallbackCurrency
	}

	// Vendors render a pending amount as a bare dash.
	if text == "" || text == "-" || text == "—" {
		return database.Money{}, errors.Wrap(common.ErrAmountNotFound, "amount is a placeholder")
	}

	normalized, err := normalizeNumber(text, locale)
	if err != nil {
		return database.Money{}, err
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return database.Money{}, errors.Wrapf(common.ErrAmountUnparseable, "%q", text)
	}

	if amount.IsNegative() {
		return database.Money{}, errors.Wrapf(common.ErrAmountUnparseable, "negative amount %q", text)
	}

	return database.NewMoney(amount, currency)
}

// normalizeNumber strips grouping separators and rewrites the decimal
// separator to a dot, rejecting anything that is not a plain number
// afterwards.
func normalizeNumber(text string, locale NumberLocale) (string, error) {
	var sb strings.Builder
	seenDecimal := false

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == locale.GroupSep:
			if seenDecimal {
				return "", errors.Wrapf(common.ErrAmountUnparseable, "grouping separator after decimal in %q", text)
			}
		case r == locale.DecimalSep:
			if seenDecimal {
				return "", errors.Wrapf(common.ErrAmountUnparseable, "multiple decimal separators in %q", text)
			}
			seenDecimal = true
			sb.WriteRune('.')
		default:
			return "", errors.Wrapf(common.ErrAmountUnparseable, "unexpected character %q in %q", r, text)
		}
	}

	out := sb.String()
	if out == "" || out == "." {
		return "", errors.Wrapf(common.ErrAmountUnparseable, "no digits in %q", text)
	}

	return out, nil
}
