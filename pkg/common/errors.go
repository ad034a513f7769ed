package common

import "github.com/cockroachdb/errors"

var (
	ErrTemplateMismatch  = errors.New("message does not match vendor template")
	ErrFieldMissing      = errors.New("required field is missing")
	ErrAmountNotFound    = errors.New("no amount found")
	ErrAmountUnparseable = errors.New("amount is not a valid number")
	ErrInvalidCurrency   = errors.New("invalid or unsupported currency code")
	ErrDateUnparseable   = errors.New("date is not in a known format")
	ErrDateOutOfRange    = errors.New("date value is out of range")
	ErrDuplicate         = errors.New("duplicate transaction")
)
