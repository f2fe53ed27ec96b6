package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The client is gone; nothing useful left to do.
		return
	}
}

// writeData writes a success envelope around the given payload.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.Response{Success: true, Data: data})
}

// writeError maps the error to an HTTP status and writes a failure
// envelope. Unrecognised errors become an opaque 500.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("handler error")
	} else {
		logger.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, model.Response{Success: false, Error: message})
}

// statusForError resolves domain errors to statuses and client-safe
// messages.
func statusForError(err error) (int, string) {
	var depErr *model.DependentItemsError
	if errors.As(err, &depErr) {
		return http.StatusBadRequest, depErr.Error()
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation, model.ErrCodeConflict:
			return http.StatusBadRequest, domainErr.Message
		case model.ErrCodeUnauthenticated, model.ErrCodeUnauthorized:
			return http.StatusUnauthorized, domainErr.Message
		case model.ErrCodeNotFound:
			return http.StatusNotFound, domainErr.Message
		}
		return http.StatusInternalServerError, domainErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusInternalServerError, "Storage timeout"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid JSON body")
	}
	return nil
}

// idParam parses the numeric {id} path parameter.
func idParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, model.NewDomainError(model.ErrCodeValidation, "Invalid id")
	}
	return id, nil
}
