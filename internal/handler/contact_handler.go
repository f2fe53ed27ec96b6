package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/service"
)

// ContactHandler handles contact-info HTTP requests.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Get handles GET /api/contact-info. An unset record yields an empty
// object so the client always has something to render.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	if info == nil {
		info = &model.ContactInfo{}
	}
	writeData(w, http.StatusOK, info)
}

// Save handles PUT /api/contact-info.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInfo
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, h.logger)
		return
	}

	info, err := h.service.Save(r.Context(), &in)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, info)
}
