package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/skynet2/moneymate-scraper/pkg/parser"
)

// DefaultQuery matches receipt mail from the supported vendors.
const DefaultQuery = "from:(gojek OR grab OR bca OR mandiri) subject:(receipt OR bukti OR transfer)"

// Client wraps the Gmail API with cached-token OAuth. Only the read-only
// scope is requested; the mailbox is never modified.
type Client struct {
	credentialsPath string
	tokenPath       string
	svc             *gmailapi.Service
}

func NewClient(
	credentialsPath string,
	tokenPath string,
) *Client {
	return &Client{
		credentialsPath: credentialsPath,
		tokenPath:       tokenPath,
	}
}

// Authenticate loads the cached token, refreshing it transparently through
// the oauth2 token source, or runs the console consent flow when no usable
// token exists yet.
func (c *Client) Authenticate(ctx context.Context) error {
	b, err := os.ReadFile(c.credentialsPath)
	if err != nil {
		return errors.Wrapf(err,
			"oauth credentials file not found at %s, download it from the Google Cloud Console",
			c.credentialsPath)
	}

	config, err := google.ConfigFromJSON(b, gmailapi.GmailReadonlyScope)
	if err != nil {
		return errors.Wrap(err, "failed to parse oauth credentials")
	}

	token, err := c.tokenFromFile()
	if err != nil {
		zerolog.Ctx(ctx).Info().Msg("no cached token found, starting consent flow")

		token, err = c.consentFlow(ctx, config)
		if err != nil {
			return err
		}
	}

	source := config.TokenSource(ctx, token)

	// Persist the possibly refreshed token for the next run.
	if current, tokenErr := source.Token(); tokenErr == nil {
		if saveErr := c.saveToken(current); saveErr != nil {
			zerolog.Ctx(ctx).Warn().Err(saveErr).Msg("failed to persist token")
		}
	}

	c.svc, err = gmailapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return errors.Wrap(err, "failed to build gmail service")
	}

	return nil
}

// FetchReceipts lists messages matching the query and downloads each in raw
// RFC 2822 form. A message that cannot be downloaded or decoded is skipped
// with a warning so one bad message never aborts the batch.
func (c *Client) FetchReceipts(
	ctx context.Context,
	query string,
	maxResults int64,
) ([]*parser.RawMessage, error) {
	if c.svc == nil {
		return nil, errors.New("gmail client is not authenticated")
	}

	list, err := c.svc.Users.Messages.List("me").
		Q(query).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	var messages []*parser.RawMessage

	for _, meta := range list.Messages {
		full, getErr := c.svc.Users.Messages.Get("me", meta.Id).
			Format("raw").
			Context(ctx).
			Do()
		if getErr != nil {
			zerolog.Ctx(ctx).Warn().Err(getErr).Str("message_id", meta.Id).
				Msg("failed to download message")
			continue
		}

		rawBytes, decodeErr := base64.URLEncoding.DecodeString(full.Raw)
		if decodeErr != nil {
			zerolog.Ctx(ctx).Warn().Err(decodeErr).Str("message_id", meta.Id).
				Msg("failed to decode message payload")
			continue
		}

		msg, parseErr := FromRFC822(meta.Id, rawBytes)
		if parseErr != nil {
			zerolog.Ctx(ctx).Warn().Err(parseErr).Str("message_id", meta.Id).
				Msg("failed to parse message")
			continue
		}

		messages = append(messages, msg)
	}

	return messages, nil
}

func (c *Client) tokenFromFile() (*oauth2.Token, error) {
	f, err := os.Open(c.tokenPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var token oauth2.Token
	if err = json.NewDecoder(f).Decode(&token); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached token")
	}

	return &token, nil
}

func (c *Client) saveToken(token *oauth2.Token) error {
	f, err := os.OpenFile(c.tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return json.NewEncoder(f).Encode(token)
}

func (c *Client) consentFlow(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser and paste the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, errors.Wrap(err, "failed to read authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	return token, nil
}
