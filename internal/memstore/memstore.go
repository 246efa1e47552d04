// Package memstore implements every repository on plain in-memory state.
// It backs the demo storage driver and doubles as the fake the tests run
// against. All methods copy on the way in and out so callers can never
// alias the store's own records.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/settings"
)

type Store struct {
	mu       sync.Mutex
	items    []catalog.Item
	txs      []ledger.Transaction
	settings *settings.Settings
}

func New() *Store {
	return &Store{}
}

// Catalog

func (s *Store) ListItems(_ context.Context) ([]*catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*catalog.Item, len(s.items))
	for i := range s.items {
		item := s.items[i]
		items[i] = &item
	}

	return items, nil
}

func (s *Store) CreateItem(_ context.Context, item *catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			return catalog.ErrDuplicate
		}
	}

	s.items = append(s.items, *item)

	return nil
}

func (s *Store) UpdateItem(_ context.Context, id string, params catalog.UpdateParams) (*catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if params.Name != nil {
			s.items[i].Name = *params.Name
		}

		if params.Price != nil {
			s.items[i].Price = *params.Price
		}

		if params.Image != nil {
			s.items[i].Image = *params.Image
		}

		if params.Description != nil {
			s.items[i].Description = *params.Description
		}

		item := s.items[i]

		return &item, nil
	}

	return nil, catalog.ErrNotFound
}

func (s *Store) DeleteItem(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// Ledger

func (s *Store) AppendTransaction(_ context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txs {
		if s.txs[i].ID == tx.ID {
			return ledger.ErrDuplicate
		}
	}

	s.txs = append(s.txs, copyTransaction(tx))

	return nil
}

func (s *Store) GetTransaction(_ context.Context, id string) (*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txs {
		if s.txs[i].ID == id {
			tx := copyTransaction(&s.txs[i])
			return &tx, nil
		}
	}

	return nil, ledger.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context) ([]*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := make([]*ledger.Transaction, len(s.txs))
	for i := range s.txs {
		tx := copyTransaction(&s.txs[i])
		txs[i] = &tx
	}

	// Newest first, matching what the SQL store sorts at the source.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp > txs[j].Timestamp
	})

	return txs, nil
}

func copyTransaction(tx *ledger.Transaction) ledger.Transaction {
	out := *tx
	out.Items = append([]ledger.Line(nil), tx.Items...)

	return out
}

// Settings

func (s *Store) GetSettings(_ context.Context) (*settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		s.settings = &settings.Settings{}
	}

	out := *s.settings

	return &out, nil
}

func (s *Store) SaveSettings(_ context.Context, in *settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *in
	s.settings = &cp

	return nil
}
