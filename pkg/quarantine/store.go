package quarantine

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"github.com/skynet2/moneymate-scraper/pkg/database"
)

// Record is one malformed message held for manual review.
type Record struct {
	ID         string
	EmailID    string
	Source     database.TransactionSource
	Reason     string
	RawSubject string
	CreatedAt  time.Time
}

// Store keeps quarantined messages and submitted deduplication keys in an
// embedded SQLite database.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open quarantine database")
	}

	s := &Store{db: db}
	if err = s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS quarantine (
	id TEXT PRIMARY KEY,
	email_id TEXT NOT NULL,
	source TEXT NOT NULL,
	reason TEXT NOT NULL,
	raw_subject TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS duplicate_keys (
	key TEXT NOT NULL,
	source TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (key, source)
);`)

	return err
}

func (s *Store) Add(ctx context.Context, record Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO quarantine (id, email_id, source, reason, raw_subject, created_at) VALUES (?,?,?,?,?,?)",
		record.ID, record.EmailID, string(record.Source), record.Reason, record.RawSubject, record.CreatedAt)

	return err
}

func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, email_id, source, reason, raw_subject, created_at FROM quarantine ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*Record
	for rows.Next() {
		var record Record
		var source string

		if err = rows.Scan(&record.ID, &record.EmailID, &source,
			&record.Reason, &record.RawSubject, &record.CreatedAt); err != nil {
			return nil, err
		}

		record.Source = database.TransactionSource(source)
		records = append(records, &record)
	}

	return records, rows.Err()
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM quarantine")

	return err
}

func (s *Store) IsDuplicateKeyExists(
	ctx context.Context,
	key string,
	source database.TransactionSource,
) (bool, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM duplicate_keys WHERE key = ? AND source = ?",
		key, string(source)).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *Store) AddDuplicateKey(
	ctx context.Context,
	key string,
	source database.TransactionSource,
) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO duplicate_keys (key, source, created_at) VALUES (?,?,?)",
		key, string(source), time.Now().UTC())

	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
