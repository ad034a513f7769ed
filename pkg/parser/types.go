package parser

import (
	"net/mail"
	"net/textproto"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// RawMessage is one fetched mailbox item. The pipeline never mutates it.
type RawMessage struct {
	ID       string
	Headers  map[string]string
	TextBody string
	HTMLBody string
}

func (m *RawMessage) Header(name string) string {
	if m.Headers == nil {
		return ""
	}

	if v, ok := m.Headers[name]; ok {
		return v
	}

	return m.Headers[textproto.CanonicalMIMEHeaderKey(name)]
}

func (m *RawMessage) Subject() string {
	return m.Header("Subject")
}

// FromAddress returns the bare address part of the From header, lowercased
// elsewhere by callers. Falls back to the raw header when it is not a valid
// RFC 5322 address.
func (m *RawMessage) FromAddress() string {
	raw := m.Header("From")

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return raw
	}

	return addr.Address
}

// Fields is the raw, still-unparsed output of a vendor extractor. Amount and
// date stay textual here; normalization happens in the pipeline using the
// vendor profile.
type Fields struct {
	Description  string
	AmountText   string
	CurrencyHint string
	DateText     string
}

type OutcomeKind int32

const (
	OutcomeParsed       = OutcomeKind(1)
	OutcomeUnrecognized = OutcomeKind(2)
	OutcomeMalformed    = OutcomeKind(3)
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeParsed:
		return "parsed"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Outcome is the pipeline's per-message result. Exactly one of the three
// kinds is produced per message; Reason is set only for malformed outcomes.
type Outcome struct {
	Kind        OutcomeKind
	EmailID     string
	Source      database.TransactionSource
	Transaction *database.Transaction
	Reason      error
}
