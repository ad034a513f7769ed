package moneymate

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// MoneyMate posts parsed transactions to the MoneyMate API.
type MoneyMate struct {
	cl     *req.Client
	apiKey string
	apiURL string
}

func NewMoneyMate(
	apiKey string,
	apiURL string,
	cl *req.Client,
) *MoneyMate {
	return &MoneyMate{
		cl:     cl,
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

func (m *MoneyMate) CreateTransaction(
	ctx context.Context,
	tx *database.Transaction,
) error {
	body := CreateTransactionRequest{
		Source:          string(tx.Source),
		Description:     tx.Description,
		Amount:          tx.Amount.Amount.String(),
		Currency:        tx.Amount.Currency,
		TransactionDate: tx.Date,
		EmailID:         tx.EmailID,
		RawSubject:      tx.RawSubject,
	}

	resp, err := m.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(m.apiKey).
		SetBody(body).
		Post(m.apiURL + "/transactions")
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}
