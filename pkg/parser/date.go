package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/moneymate-scraper/pkg/common"
)

// indonesianMonths rewrites Indonesian month names to English so the stdlib
// layouts can parse them. Longer names first so "Juni" is not clipped by
// "Jun".
var indonesianMonths = []struct {
	id string
	en string
}{
	{"Januari", "January"},
	{"Februari", "February"},
	{"Maret", "March"},
	{"Agustus", "August"},
	{"Oktober", "October"},
	{"Desember", "December"},
	{"Juni", "June"},
	{"Juli", "July"},
	{"Mei", "May"},
	{"Agu", "Aug"},
	{"Okt", "Oct"},
	{"Des", "Dec"},
}

var indonesianZones = regexp.MustCompile(`\s+(WIB|WITA|WIT)\s*$`)

var numericDateRegex = regexp.MustCompile(`(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})`)

// canonicalLayouts are tried for every vendor before the vendor's own
// layouts, keeping the normalizer idempotent on already-canonical
// timestamps.
var canonicalLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
}

// ParseDate parses a vendor date string. Layouts without zone information
// are interpreted in loc, the vendor's static timezone hint. dayFirst names
// the vendor's known day/month ordering for numeric dates and is used only
// for range diagnostics; the layouts themselves already encode the ordering.
func ParseDate(text string, layouts []string, loc *time.Location, dayFirst bool) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, errors.Wrap(common.ErrDateUnparseable, "empty date text")
	}

	text = strings.TrimSpace(indonesianZones.ReplaceAllString(text, ""))

	normalized := text
	for _, m := range indonesianMonths {
		normalized = strings.ReplaceAll(normalized, m.id, m.en)
		normalized = strings.ReplaceAll(normalized, strings.ToLower(m.id), m.en)
	}

	if loc == nil {
		loc = time.UTC
	}

	outOfRange := false

	for _, layout := range append(append([]string{}, canonicalLayouts...), layouts...) {
		parsed, err := time.ParseInLocation(layout, normalized, loc)
		if err == nil {
			return parsed, nil
		}

		if strings.Contains(err.Error(), "out of range") {
			outOfRange = true
		}
	}

	if outOfRange {
		return time.Time{}, errors.Wrapf(common.ErrDateOutOfRange, "%q", text)
	}

	// A date-shaped string no layout accepted: distinguish impossible values
	// from plain garbage.
	if m := numericDateRegex.FindStringSubmatch(normalized); m != nil {
		day, month := m[1], m[2]
		if !dayFirst {
			day, month = month, day
		}

		if atoiOrZero(month) > 12 || atoiOrZero(day) > 31 || atoiOrZero(month) == 0 || atoiOrZero(day) == 0 {
			return time.Time{}, errors.Wrapf(common.ErrDateOutOfRange, "%q", text)
		}
	}

	return time.Time{}, errors.Wrapf(common.ErrDateUnparseable, "%q", text)
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}

	return n
}
