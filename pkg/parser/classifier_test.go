package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skynet2/moneymate-scraper/pkg/database"
	"github.com/skynet2/moneymate-scraper/pkg/parser"
)

func newMessage(id, from, subject, text, html string) *parser.RawMessage {
	return &parser.RawMessage{
		ID: id,
		Headers: map[string]string{
			"From":    from,
			"Subject": subject,
		},
		TextBody: text,
		HTMLBody: html,
	}
}

func TestClassifyKnownVendors(t *testing.T) {
	cases := []struct {
		name     string
		from     string
		subject  string
		expected database.TransactionSource
	}{
		{"gojek receipt", "Gojek <no-reply@gojek.com>", "Your trip receipt", database.SourceGojek},
		{"gojek subdomain", "receipts@mail.gojek.com", "Order receipt", database.SourceGojek},
		{"grab receipt", "Grab <no-reply@grab.com>", "Your Grab E-Receipt", database.SourceGrab},
		{"bca transfer", "KlikBCA <info@klikbca.com>", "Bukti Transfer m-BCA", database.SourceBCA},
		{"mandiri transfer", "noreply@bankmandiri.co.id", "Notifikasi Transaksi Berhasil", database.SourceMandiri},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := newMessage("id-1", tc.from, tc.subject, "", "")
			assert.Equal(t, tc.expected, parser.Classify(msg))
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		subject string
	}{
		{"unrelated sender", "newsletter@example.com", "Your trip receipt"},
		{"promo from ride-hailing sender", "Gojek <promo@gojek.com>", "Diskon 50% minggu ini!"},
		{"missing from header", "", "Your trip receipt"},
		{"lookalike domain", "no-reply@gojek.com.evil.io", "Your trip receipt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := newMessage("id-2", tc.from, tc.subject, "", "")
			assert.Equal(t, database.SourceUnknown, parser.Classify(msg))
		})
	}
}
