package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/report"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

// List serves every monthly report, newest month first. With both year and
// month (zero-based) query params it serves that single month's report.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list transactions for report", "error", err)
		http.Error(w, "failed to build report", http.StatusInternalServerError)

		return
	}

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	var payload any

	if yearStr != "" && monthStr != "" {
		year, yerr := strconv.Atoi(yearStr)
		month, merr := strconv.Atoi(monthStr)

		if yerr != nil || merr != nil {
			http.Error(w, "year and month must be integers", http.StatusBadRequest)
			return
		}

		payload = report.Monthly(txs, year, month)
	} else {
		reports := report.AllMonthly(txs)
		if reports == nil {
			reports = []report.MonthlyReport{}
		}

		payload = reports
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
