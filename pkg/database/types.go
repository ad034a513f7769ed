package database

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/skynet2/moneymate-scraper/pkg/common"
)

type TransactionSource string

const (
	SourceUnknown TransactionSource = "unknown"
	SourceGojek   TransactionSource = "gojek"
	SourceGrab    TransactionSource = "grab"
	SourceBCA     TransactionSource = "bca"
	SourceMandiri TransactionSource = "mandiri"
)

// FutureDateTolerance bounds how far into the future a transaction date may
// be before the message is treated as malformed. Receipts routinely arrive
// with sender clocks slightly ahead of ours.
const FutureDateTolerance = 48 * time.Hour

// Money is an exact decimal amount with an ISO 4217 alphabetic currency code.
// Amounts are always non-negative; direction is carried by transaction
// semantics, not by the sign.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errors.Wrapf(common.ErrAmountUnparseable, "negative amount %s", amount)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !IsValidCurrency(currency) {
		return Money{}, errors.Wrapf(common.ErrInvalidCurrency, "%q", currency)
	}

	return Money{
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}

type Transaction struct {
	ID          string
	Source      TransactionSource
	Description string
	Amount      Money
	Date        time.Time
	EmailID     string
	RawSubject  string
}

// Validate checks the domain invariants of an assembled transaction.
func (t *Transaction) Validate(now time.Time) error {
	if strings.TrimSpace(t.Description) == "" {
		return errors.Wrap(common.ErrFieldMissing, "description")
	}

	if t.Amount.Currency == "" {
		return errors.Wrap(common.ErrInvalidCurrency, "empty currency")
	}

	if t.Amount.Amount.IsNegative() {
		return errors.Wrapf(common.ErrAmountUnparseable, "negative amount %s", t.Amount.Amount)
	}

	if t.Date.IsZero() {
		return errors.Wrap(common.ErrFieldMissing, "transaction date")
	}

	if t.Date.After(now.Add(FutureDateTolerance)) {
		return errors.Wrapf(common.ErrDateOutOfRange,
			"transaction date %s is in the future", t.Date.Format(time.RFC3339))
	}

	return nil
}

// DeduplicationKey identifies a receipt across repeated fetches of the same
// mailbox window.
func (t *Transaction) DeduplicationKey() string {
	return strings.Join([]string{
		t.EmailID,
		string(t.Source),
		t.Amount.Amount.String(),
		t.Amount.Currency,
		t.Date.UTC().Format(time.RFC3339),
	}, "$$")
}
