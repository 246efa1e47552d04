// Package storage selects and wires a persistence backend from config.
package storage

import (
	"context"
	"fmt"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	catalogStore "github.com/Mr-Vicky-01/billing-software/internal/catalog/store"
	"github.com/Mr-Vicky-01/billing-software/internal/config"
	"github.com/Mr-Vicky-01/billing-software/internal/database"
	"github.com/Mr-Vicky-01/billing-software/internal/jsonfile"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	ledgerStore "github.com/Mr-Vicky-01/billing-software/internal/ledger/store"
	"github.com/Mr-Vicky-01/billing-software/internal/memstore"
	"github.com/Mr-Vicky-01/billing-software/internal/settings"
	settingsStore "github.com/Mr-Vicky-01/billing-software/internal/settings/store"
)

// Stores bundles one repository per domain, all backed by the same driver.
type Stores struct {
	Catalog  catalog.Repository
	Ledger   ledger.Repository
	Settings settings.Repository

	closer func() error
}

func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer()
}

// Open wires the backend named by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)

	case config.DriverFile:
		fs, err := jsonfile.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}

		return &Stores{Catalog: fs, Ledger: fs, Settings: fs}, nil

	case config.DriverMemory:
		ms := memstore.New()
		return &Stores{Catalog: ms, Ledger: ms, Settings: ms}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Stores, error) {
	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	var (
		cs = catalogStore.New(db)
		ls = ledgerStore.New(db)
		ss = settingsStore.New(db)
	)

	for _, ensure := range []func(context.Context) error{
		cs.EnsureSchema,
		ls.EnsureSchema,
		ss.EnsureSchema,
	} {
		if err := ensure(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Stores{
		Catalog:  cs,
		Ledger:   ls,
		Settings: ss,
		closer:   db.Close,
	}, nil
}
