package parser

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/moneymate-scraper/pkg/common"
	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// BCA m-Transfer confirmations are plaintext key-value blocks in Indonesian:
// "Jumlah" is the amount, "Tanggal" the date, "Kepada" the beneficiary and
// "Berita" the free-form note.
type BCA struct {
}

func NewBCA() *BCA {
	return &BCA{}
}

func (b *BCA) Source() database.TransactionSource {
	return database.SourceBCA
}

func (b *BCA) Profile() Profile {
	return Profile{
		Locale:          LocaleIndonesian,
		DefaultCurrency: "IDR",
		Timezone:        jakartaTime,
		DateLayouts: []string{
			"02/01/2006 15:04:05",
			"02/01/2006 15:04",
		},
		DayFirst: true,
	}
}

func (b *BCA) Extract(msg *RawMessage) (*Fields, error) {
	lines := bodyLines(msg)
	if len(lines) == 0 {
		return nil, errors.Wrap(common.ErrTemplateMismatch, "no readable body")
	}

	amountText, ok := labeledValue(lines, "Jumlah")
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "amount")
	}

	dateText, ok := labeledValue(lines, "Tanggal")
	if !ok {
		return nil, errors.Wrap(common.ErrFieldMissing, "date")
	}

	description, ok := labeledValue(lines, "Berita")
	if !ok {
		if beneficiary, hasTo := labeledValue(lines, "Kepada"); hasTo {
			description = "Transfer ke " + beneficiary
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
