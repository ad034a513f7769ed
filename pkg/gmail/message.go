package gmail

import (
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/emersion/go-message/mail"

	_ "github.com/emersion/go-message/charset"

	"github.com/skynet2/moneymate-scraper/pkg/parser"
)

// FromRFC822 converts one raw RFC 2822 message into the pipeline's input
// shape: decoded headers plus the first text/plain and text/html parts.
// Attachments are ignored.
func FromRFC822(id string, raw []byte) (*parser.RawMessage, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message")
	}

	headers := map[string]string{}
	for _, name := range []string{"From", "To", "Date"} {
		if v := mr.Header.Get(name); v != "" {
			headers[name] = v
		}
	}

	// Subject goes through the dedicated accessor to decode encoded words.
	if subject, subjectErr := mr.Header.Subject(); subjectErr == nil && subject != "" {
		headers["Subject"] = subject
	}

	msg := &parser.RawMessage{
		ID:      id,
		Headers: headers,
	}

	for {
		part, partErr := mr.NextPart()
		if partErr == io.EOF {
			break
		}
		if partErr != nil {
			return nil, errors.Wrap(partErr, "failed to read message part")
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, typeErr := header.ContentType()
		if typeErr != nil {
			continue
		}

		body, readErr := io.ReadAll(part.Body)
		if readErr != nil {
			return nil, errors.Wrap(readErr, "failed to read part body")
		}

		switch {
		case strings.HasPrefix(contentType, "text/plain") && msg.TextBody == "":
			msg.TextBody = string(body)
		case strings.HasPrefix(contentType, "text/html") && msg.HTMLBody == "":
			msg.HTMLBody = string(body)
		}
	}

	return msg, nil
}
