package parser

import (
	"html"
	"regexp"
	"strings"
)

func toLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(input, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	return lines
}

var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	headTag       = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|td|th|blockquote|pre|table)>`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// stripHTML flattens a vendor HTML body into plain text lines so labeled
// values can be located the same way as in plaintext receipts. Each closed
// block element becomes a line break.
func stripHTML(input string) string {
	out := htmlComments.ReplaceAllString(input, "")
	out = scriptTag.ReplaceAllString(out, "")
	out = styleTag.ReplaceAllString(out, "")
	out = headTag.ReplaceAllString(out, "")
	out = brTags.ReplaceAllString(out, "\n")
	out = blockElements.ReplaceAllString(out, "\n")
	out = allTags.ReplaceAllString(out, "")
	out = html.UnescapeString(out)
	out = multiSpaces.ReplaceAllString(out, " ")
	out = multiNewlines.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// bodyLines returns the message body as trimmed lines, preferring the plain
// text part and falling back to the flattened HTML part.
func bodyLines(msg *RawMessage) []string {
	if strings.TrimSpace(msg.TextBody) != "" {
		return toLines(msg.TextBody)
	}

	if strings.TrimSpace(msg.HTMLBody) != "" {
		return toLines(stripHTML(msg.HTMLBody))
	}

	return nil
}

// labeledValue finds "Label: value" in the given lines, case-insensitively.
// When the value part is empty, the next non-empty line is returned, which
// covers HTML tables where label and value sit in adjacent cells.
func labeledValue(lines []string, label string) (string, bool) {
	label = strings.ToLower(label)

	for i, line := range lines {
		lower := strings.ToLower(line)

		if !strings.HasPrefix(lower, label) {
			continue
		}

		tail := line[len(label):]
		if tail != "" && tail[0] != ':' && tail[0] != ' ' && tail[0] != '\t' {
			continue // label is a prefix of a longer word
		}

		rest := strings.TrimSpace(tail)
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		if rest != "" {
			return rest, true
		}

		for j := i + 1; j < len(lines); j++ {
			if lines[j] != "" {
				return lines[j], true
			}
		}

		return "", false
	}

	return "", false
}
