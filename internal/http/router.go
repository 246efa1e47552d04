package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Mr-Vicky-01/billing-software/internal/http/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/http/events"
	"github.com/Mr-Vicky-01/billing-software/internal/http/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/http/report"
	"github.com/Mr-Vicky-01/billing-software/internal/http/settings"
)

func New(
	catalogH *catalog.Handler,
	ledgerH *ledger.Handler,
	reportH *report.Handler,
	settingsH *settings.Handler,
	eventsH *events.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The web UI is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/menu-items", func(r chi.Router) {
		r.With(middleware.AllowContentType("application/json")).Post("/", catalogH.Create)
		r.With(middleware.AllowContentType("application/json")).Put("/", catalogH.Update)
		r.Get("/", catalogH.List)
		r.Delete("/", catalogH.Delete)
	})

	router.Route("/transactions", func(r chi.Router) {
		r.With(middleware.AllowContentType("application/json")).Post("/", ledgerH.Create)
		r.Get("/", ledgerH.List)
		r.Get("/{id}/receipt", ledgerH.Receipt)
	})

	router.Get("/reports", reportH.List)

	router.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsH.Get)
		r.With(middleware.AllowContentType("application/json")).Post("/", settingsH.Save)
	})

	router.Get("/events", eventsH.Stream)

	return router
}
