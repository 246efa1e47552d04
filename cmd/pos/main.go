package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Mr-Vicky-01/billing-software/cmd/pos/internal/view"
	"github.com/Mr-Vicky-01/billing-software/internal/cart"
	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/config"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/storage"
)

type model struct {
	catalogService *catalog.Service
	ledgerService  *ledger.Service
	cart           *cart.Cart

	currentView View

	catalogView view.CatalogModel
	cartView    view.CartModel
	reportsView view.ReportsModel
}

type View int

const (
	ViewMenu    View = 0
	ViewCatalog View = 1
	ViewCart    View = 2
	ViewReports View = 3
)

func initialModel() model {
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

	// Change notifications have no subscriber in the terminal session.
	catalogSvc := catalog.NewService(stores.Catalog, nil)
	ledgerSvc := ledger.NewService(stores.Ledger, nil)

	// One cart per terminal session, never persisted.
	sessionCart := cart.New()

	return model{
		catalogService: catalogSvc,
		ledgerService:  ledgerSvc,
		cart:           sessionCart,
		currentView:    ViewMenu,
		catalogView:    view.NewCatalogModel(catalogSvc, sessionCart),
		cartView:       view.NewCartModel(sessionCart, ledgerSvc),
		reportsView:    view.NewReportsModel(ledgerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCatalog
				m.catalogView = view.NewCatalogModel(m.catalogService, m.cart)

				return m, m.catalogView.Init()
			case "2":
				m.currentView = ViewCart
				m.cartView = view.NewCartModel(m.cart, m.ledgerService)

				return m, m.cartView.Init()
			case "3":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.ledgerService)

				return m, m.reportsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCatalog:
		var newModel tea.Model
		newModel, cmd = m.catalogView.Update(msg)
		m.catalogView = newModel.(view.CatalogModel)
	case ViewCart:
		var newModel tea.Model
		newModel, cmd = m.cartView.Update(msg)
		m.cartView = newModel.(view.CartModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Billing Software POS\n\n" +
				"1. Browse Menu\n" +
				"2. Cart & Checkout\n" +
				"3. Sales Reports\n\n" +
				"q. Quit",
		)
	case ViewCatalog:
		return m.catalogView.View()
	case ViewCart:
		return m.cartView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run POS terminal", "error", err)
		os.Exit(1)
	}
}
