package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/config"
	"github.com/Mr-Vicky-01/billing-software/internal/events"
	posHTTP "github.com/Mr-Vicky-01/billing-software/internal/http"
	catalogHandler "github.com/Mr-Vicky-01/billing-software/internal/http/catalog"
	eventsHandler "github.com/Mr-Vicky-01/billing-software/internal/http/events"
	ledgerHandler "github.com/Mr-Vicky-01/billing-software/internal/http/ledger"
	reportHandler "github.com/Mr-Vicky-01/billing-software/internal/http/report"
	settingsHandler "github.com/Mr-Vicky-01/billing-software/internal/http/settings"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/settings"
	"github.com/Mr-Vicky-01/billing-software/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	stores, err := storage.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	bus := events.NewBus(slog.Default())
	defer bus.Close()

	var (
		catalogService  = catalog.NewService(stores.Catalog, bus)
		ledgerService   = ledger.NewService(stores.Ledger, bus)
		settingsService = settings.NewService(stores.Settings, bus)
	)

	var (
		catalogH  = catalogHandler.NewHandler(catalogService)
		ledgerH   = ledgerHandler.NewHandler(ledgerService, cfg.App.Name)
		reportH   = reportHandler.NewHandler(ledgerService)
		settingsH = settingsHandler.NewHandler(settingsService)
		eventsH   = eventsHandler.NewHandler(bus)
	)

	router := posHTTP.New(catalogH, ledgerH, reportH, settingsH, eventsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "driver", cfg.Storage.Driver)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
