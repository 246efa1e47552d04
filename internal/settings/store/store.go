package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Mr-Vicky-01/billing-software/internal/settings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// The singleton row always lives at this key, which is what keeps concurrent
// savers from creating a second record.
const singletonID = 1

const schema = `
	CREATE TABLE IF NOT EXISTS settings (
		id INT PRIMARY KEY,
		qr_code TEXT NOT NULL DEFAULT ''
	)
`

// EnsureSchema creates the settings table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating settings table: %w", err)
	}

	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*settings.Settings, error) {
	query := `
		INSERT INTO settings (id, qr_code)
		VALUES ($1, '')
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING qr_code
	`

	var out settings.Settings
	if err := s.db.QueryRowContext(ctx, query, singletonID).Scan(&out.QRCode); err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &out, nil
}

func (s *Store) SaveSettings(ctx context.Context, in *settings.Settings) error {
	query := `
		INSERT INTO settings (id, qr_code)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET qr_code = EXCLUDED.qr_code
	`

	if _, err := s.db.ExecContext(ctx, query, singletonID, in.QRCode); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
