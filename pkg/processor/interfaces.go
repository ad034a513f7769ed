package processor

import (
	"context"

	"github.com/skynet2/moneymate-scraper/pkg/database"
	parser2 "github.com/skynet2/moneymate-scraper/pkg/parser"
	"github.com/skynet2/moneymate-scraper/pkg/quarantine"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Mailbox interface {
	FetchReceipts(
		ctx context.Context,
		query string,
		maxResults int64,
	) ([]*parser2.RawMessage, error)
}

type Parser interface {
	Parse(msg *parser2.RawMessage) parser2.Outcome
}

type Submitter interface {
	CreateTransaction(ctx context.Context, tx *database.Transaction) error
}

type Quarantine interface {
	Add(ctx context.Context, record quarantine.Record) error
}

type DuplicateCleaner interface {
	IsDuplicate(
		ctx context.Context,
		key string,
		txSource database.TransactionSource,
	) (bool, error)

	AddDuplicateKey(
		ctx context.Context,
		key string,
		txSource database.TransactionSource,
	) error
}
