package duplicatecleaner

import (
	"context"
	"crypto/sha512"
	"fmt"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// DuplicateCleaner remembers which receipts were already submitted.
// Re-running the scraper re-fetches the same recent mailbox window, so every
// parsed transaction is checked against the stored key set first.
type DuplicateCleaner struct {
	repo Repo
}

func NewDuplicateCleaner(
	repo Repo,
) *DuplicateCleaner {
	return &DuplicateCleaner{
		repo: repo,
	}
}

func (d *DuplicateCleaner) IsDuplicate(
	ctx context.Context,
	key string,
	txSource database.TransactionSource,
) (bool, error) {
	if key == "" {
		return false, nil
	}

	return d.repo.IsDuplicateKeyExists(ctx, d.HashKey(key), txSource)
}

func (d *DuplicateCleaner) AddDuplicateKey(
	ctx context.Context,
	key string,
	txSource database.TransactionSource,
) error {
	if key == "" {
		return nil
	}

	return d.repo.AddDuplicateKey(ctx, d.HashKey(key), txSource)
}

func (d *DuplicateCleaner) HashKey(bv string) string {
	shaImpl := sha512.New()
	shaImpl.Write([]byte(bv))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}
