package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/receipt"
)

type Handler struct {
	svc      *ledger.Service
	shopName string
}

func NewHandler(svc *ledger.Service, shopName string) *Handler {
	return &Handler{svc: svc, shopName: shopName}
}

// List returns all transactions, or just one calendar month when both year
// and month (zero-based) query params are present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		txs []*ledger.Transaction
		err error
	)

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr != "" && monthStr != "" {
		year, yerr := strconv.Atoi(yearStr)
		month, merr := strconv.Atoi(monthStr)

		if yerr != nil || merr != nil {
			http.Error(w, "year and month must be integers", http.StatusBadRequest)
			return
		}

		txs, err = h.svc.ListByMonth(r.Context(), year, month)
	} else {
		txs, err = h.svc.List(r.Context())
	}

	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		http.Error(w, "failed to fetch transactions", http.StatusInternalServerError)

		return
	}

	if txs == nil {
		txs = []*ledger.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(txs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var tx ledger.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.svc.Append(r.Context(), &tx)
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicate) {
			http.Error(w, "transaction id already exists", http.StatusConflict)
			return
		}

		slog.Error("failed to record transaction", "error", err)
		http.Error(w, "failed to record transaction", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(stored); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Receipt renders the transaction's bill as a PDF.
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to load transaction", "error", err, "id", id)
		http.Error(w, "failed to load transaction", http.StatusInternalServerError)

		return
	}

	pdf, err := receipt.Render(tx, h.shopName)
	if err != nil {
		slog.Error("failed to render receipt", "error", err, "id", id)
		http.Error(w, "failed to render receipt", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")

	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write receipt", "error", err)
	}
}
