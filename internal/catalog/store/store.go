package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
	CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price BIGINT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)
`

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// EnsureSchema creates the menu_items table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating menu_items table: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*catalog.Item, error) {
	var item catalog.Item
	if err := s.Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Description); err != nil {
		return nil, err
	}

	return &item, nil
}

const selectItemColumns = `id, name, price, image, description`

func (s *Store) ListItems(ctx context.Context) ([]*catalog.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM menu_items ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	defer rows.Close()

	var items []*catalog.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}

	return items, nil
}

func (s *Store) CreateItem(ctx context.Context, item *catalog.Item) error {
	query := `
		INSERT INTO menu_items (id, name, price, image, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Price,
		item.Image,
		item.Description,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return catalog.ErrDuplicate
		}

		return fmt.Errorf("creating menu item: %w", err)
	}

	return nil
}

func (s *Store) UpdateItem(ctx context.Context, id string, params catalog.UpdateParams) (*catalog.Item, error) {
	query := `
		UPDATE menu_items
		SET name = COALESCE($1, name),
		    price = COALESCE($2, price),
		    image = COALESCE($3, image),
		    description = COALESCE($4, description)
		WHERE id = $5
		RETURNING ` + selectItemColumns

	item, err := scanItem(s.db.QueryRowContext(ctx, query,
		params.Name,
		params.Price,
		params.Image,
		params.Description,
		id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("updating menu item: %w", err)
	}

	return item, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM menu_items WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting menu item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting menu item: %w", err)
	}

	return affected > 0, nil
}
