package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		items JSONB NOT NULL,
		subtotal BIGINT NOT NULL,
		total BIGINT NOT NULL,
		date TEXT NOT NULL,
		ts BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS transactions_ts_idx ON transactions (ts DESC);
`

// EnsureSchema creates the transactions table and its timestamp index.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating transactions table: %w", err)
	}

	return nil
}

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

func (s *Store) AppendTransaction(ctx context.Context, tx *ledger.Transaction) error {
	items, err := json.Marshal(tx.Items)
	if err != nil {
		return fmt.Errorf("encoding transaction items: %w", err)
	}

	query := `
		INSERT INTO transactions (id, items, subtotal, total, date, ts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = s.db.ExecContext(ctx, query,
		tx.ID,
		items,
		tx.Subtotal,
		tx.Total,
		tx.Date,
		tx.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ledger.ErrDuplicate
		}

		return fmt.Errorf("appending transaction: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var items []byte

	if err := s.Scan(&tx.ID, &items, &tx.Subtotal, &tx.Total, &tx.Date, &tx.Timestamp); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &tx.Items); err != nil {
		return nil, fmt.Errorf("decoding transaction items: %w", err)
	}

	return &tx, nil
}

const selectTransactionColumns = `id, items, subtotal, total, date, ts`

func (s *Store) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY ts DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}
