package parser

import (
	"strings"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// vendorRule classifies a message by sender domain plus transactional
// subject keywords. Domain sets must be pairwise disjoint across rules so no
// message can ever satisfy two vendors; the classifier test enforces that.
type vendorRule struct {
	source   database.TransactionSource
	domains  []string
	keywords []string
}

var vendorRules = []vendorRule{
	{
		source:   database.SourceGojek,
		domains:  []string{"gojek.com", "go-jek.com", "gojekmail.com"},
		keywords: []string{"trip receipt", "order receipt", "receipt", "pembayaran berhasil"},
	},
	{
		source:   database.SourceGrab,
		domains:  []string{"grab.com", "grabtaxi.com"},
		keywords: []string{"e-receipt", "receipt", "your grab"},
	},
	{
		source:   database.SourceBCA,
		domains:  []string{"bca.co.id", "klikbca.com"},
		keywords: []string{"transfer", "bukti", "m-transfer"},
	},
	{
		source:   database.SourceMandiri,
		domains:  []string{"bankmandiri.co.id", "mandirionline.co.id"},
		keywords: []string{"transfer", "bukti", "notifikasi transaksi"},
	},
}

// Classify assigns exactly one source to a message. A vendor matches only
// when both the sender domain and a transactional subject keyword match, so
// promotional mail from a known vendor stays unrecognized.
func Classify(msg *RawMessage) database.TransactionSource {
	from := strings.ToLower(msg.FromAddress())
	subject := strings.ToLower(msg.Subject())

	for _, rule := range vendorRules {
		if rule.matchesDomain(from) && rule.matchesKeyword(subject) {
			return rule.source
		}
	}

	return database.SourceUnknown
}

func (r vendorRule) matchesDomain(from string) bool {
	at := strings.LastIndex(from, "@")
	if at < 0 {
		return false
	}

	host := from[at+1:]

	for _, domain := range r.domains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	return false
}

func (r vendorRule) matchesKeyword(subject string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(subject, kw) {
			return true
		}
	}

	return false
}
