package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/service"
)

// MenuItemHandler handles menu item HTTP requests.
type MenuItemHandler struct {
	service service.MenuItemService
	logger  zerolog.Logger
}

// NewMenuItemHandler creates a new menu item handler.
func NewMenuItemHandler(service service.MenuItemService, logger zerolog.Logger) *MenuItemHandler {
	return &MenuItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu-item").Logger(),
	}
}

// List handles GET /api/menu-items.
func (h *MenuItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, items)
}

// ListFeatured handles GET /api/menu-items/featured.
func (h *MenuItemHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFeatured(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, items)
}

// GetByID handles GET /api/menu-items/{id}.
func (h *MenuItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, item)
}

// Create handles POST /api/menu-items.
func (h *MenuItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.MenuItemCreate
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.Create(r.Context(), &in)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu-items/{id}.
func (h *MenuItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var in model.MenuItemUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items/{id}.
func (h *MenuItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Menu item deleted"})
}
