package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
)

// HealthHandler serves liveness and diagnostic endpoints.
type HealthHandler struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pool *pgxpool.Pool, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		pool:   pool,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Test handles GET /api/test, a plain service probe.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "API is running"})
}

// TestDB handles GET /api/test-db: verifies a pooled connection can be
// acquired and the database answers.
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := h.pool.QueryRow(r.Context(), "SELECT 1").Scan(&one); err != nil {
		h.logger.Error().Err(err).Msg("database probe failed")
		writeJSON(w, http.StatusInternalServerError, model.Response{Success: false, Error: "Database connection failed"})
		return
	}
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Database connection ok"})
}
