package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list menu items", "error", err)
		http.Error(w, "failed to fetch menu items", http.StatusInternalServerError)

		return
	}

	if items == nil {
		items = []*catalog.Item{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(items); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item catalog.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Add(r.Context(), &item)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, catalog.ErrDuplicate) {
			http.Error(w, "menu item id already exists", http.StatusConflict)
			return
		}

		slog.Error("failed to add menu item", "error", err)
		http.Error(w, "failed to add menu item", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateItemRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		http.Error(w, "menu item id is required", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Update(r.Context(), req.ID, catalog.UpdateParams{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			http.Error(w, "menu item not found", http.StatusNotFound)
		case errors.Is(err, catalog.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("failed to update menu item", "error", err, "id", req.ID)
			http.Error(w, "failed to update menu item", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(item); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "menu item id is required", http.StatusBadRequest)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete menu item", "error", err, "id", id)
		http.Error(w, "failed to delete menu item", http.StatusInternalServerError)

		return
	}

	if !deleted {
		http.Error(w, "menu item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
