package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Mr-Vicky-01/billing-software/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		http.Error(w, "failed to fetch settings", http.StatusInternalServerError)

		return
	}

	// The QR code must reflect the latest save immediately, even through
	// intermediary caches.
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(s); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var s settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Save(r.Context(), &s); err != nil {
		slog.Error("failed to save settings", "error", err)
		http.Error(w, "failed to save settings", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
