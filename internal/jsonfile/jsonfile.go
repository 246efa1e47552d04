// Package jsonfile implements every repository on three JSON documents in a
// data directory: a menu items array, a transactions array, and a settings
// object. Each mutation rewrites its whole document through a temp file and
// rename, so a crash mid-write never leaves a torn document behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/settings"
)

const (
	menuItemsFile    = "menu-items.json"
	transactionsFile = "transactions.json"
	settingsFile     = "settings.json"
)

type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// readDoc decodes the named document into out. A missing file leaves out at
// its zero value, which every caller treats as the empty collection.
func (s *Store) readDoc(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	return nil
}

// writeDoc replaces the named document atomically.
func (s *Store) writeDoc(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}

	return nil
}

// Catalog

func (s *Store) ListItems(_ context.Context) ([]*catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadItems()
}

func (s *Store) loadItems() ([]*catalog.Item, error) {
	var items []*catalog.Item
	if err := s.readDoc(menuItemsFile, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Store) CreateItem(_ context.Context, item *catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == item.ID {
			return catalog.ErrDuplicate
		}
	}

	items = append(items, item)

	return s.writeDoc(menuItemsFile, items)
}

func (s *Store) UpdateItem(_ context.Context, id string, params catalog.UpdateParams) (*catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems()
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}

		if params.Name != nil {
			item.Name = *params.Name
		}

		if params.Price != nil {
			item.Price = *params.Price
		}

		if params.Image != nil {
			item.Image = *params.Image
		}

		if params.Description != nil {
			item.Description = *params.Description
		}

		if err := s.writeDoc(menuItemsFile, items); err != nil {
			return nil, err
		}

		out := *item

		return &out, nil
	}

	return nil, catalog.ErrNotFound
}

func (s *Store) DeleteItem(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems()
	if err != nil {
		return false, err
	}

	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			return true, s.writeDoc(menuItemsFile, items)
		}
	}

	return false, nil
}

// Ledger

func (s *Store) loadTransactions() ([]*ledger.Transaction, error) {
	var txs []*ledger.Transaction
	if err := s.readDoc(transactionsFile, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (s *Store) AppendTransaction(_ context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return err
	}

	for _, existing := range txs {
		if existing.ID == tx.ID {
			return ledger.ErrDuplicate
		}
	}

	txs = append(txs, tx)

	return s.writeDoc(transactionsFile, txs)
}

func (s *Store) GetTransaction(_ context.Context, id string) (*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}

	return nil, ledger.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context) ([]*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp > txs[j].Timestamp
	})

	return txs, nil
}

// Settings

func (s *Store) GetSettings(_ context.Context) (*settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out settings.Settings
	if err := s.readDoc(settingsFile, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *Store) SaveSettings(_ context.Context, in *settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeDoc(settingsFile, in)
}
