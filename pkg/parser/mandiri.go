package parser

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/moneymate-scraper/pkg/common"
	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// Mandiri transaction notifications arrive as HTML or plaintext with
// Indonesian labels, full month names and a trailing WIB zone marker in the
// date ("12 Januari 2024 14:30 WIB").
type Mandiri struct {
}

func NewMandiri() *Mandiri {
	return &Mandiri{}
}

func (m *Mandiri) Source() database.TransactionSource {
	return database.SourceMandiri
}

func (m *Mandiri) Profile() Profile {
	return Profile{
		Locale:          LocaleIndonesian,
		DefaultCurrency: "IDR",
		Timezone:        jakartaTime,
		DateLayouts: []string{
			"2 January 2006 15:04",
			"2 Jan 2006 15:04",
			"02/01/2006 15:04",
		},
		DayFirst: true,
	}
}

func (m *Mandiri) Extract(msg *RawMessage) (*Fields, error) {
	lines := bodyLines(msg)
	if len(lines) == 0 {
		return nil, errors.Wrap(common.ErrTemplateMismatch, "no readable body")
	}

	amountText, ok := labeledValue(lines, "Jumlah Transaksi")
	if !ok {
		amountText, ok = labeledValue(lines, "Jumlah")
	}
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "amount")
	}

	dateText, ok := labeledValue(lines, "Tanggal & Waktu")
	if !ok {
		dateText, ok = labeledValue(lines, "Tanggal")
	}
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "date")
	}

	description, ok := labeledValue(lines, "Keterangan")
	if !ok {
		if target, hasTarget := labeledValue(lines, "Rekening Tujuan"); hasTarget {
			description = "Transfer ke " + target
		}
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.Wrap(common.ErrFieldMissing, "description")
	}

	return &Fields{
		Description: description,
		AmountText:  amountText,
		DateText:    dateText,
	}, nil
}
