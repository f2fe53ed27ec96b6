package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/auth"
	"restaurant-hub/internal/middleware"
	"restaurant-hub/internal/model"
	"restaurant-hub/internal/service"
)

// AuthHandler handles session authentication HTTP requests.
type AuthHandler struct {
	service  service.AuthService
	sessions *auth.SessionManager
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, sessions *auth.SessionManager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/login. On success a session cookie is set
// and the user is returned. Credential failures answer with a message,
// not an error, and never set a cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Login(r.Context(), &creds)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredential) {
			writeJSON(w, http.StatusUnauthorized, model.Response{
				Success: false,
				Message: model.ErrInvalidCredential.Message,
			})
			return
		}
		writeError(w, err, h.logger)
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	writeJSON(w, http.StatusOK, model.Response{Success: true, User: user})
}

// Probe handles GET /api/login: reports whether the request carries a
// live session. Anonymous requests get 200 with a message, not 401.
// Runs behind the SessionUser middleware.
func (h *AuthHandler) Probe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusOK, model.Response{Success: false, Message: "Not logged in"})
		return
	}
	writeJSON(w, http.StatusOK, model.Response{Success: true, User: user})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.ClearCookie())
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Logged out"})
}

// CurrentUser handles GET /api/auth/user. Anonymous requests get 200
// with a message, not 401. Runs behind the SessionUser middleware.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusOK, model.Response{Success: false, Message: "Not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, model.Response{Success: true, User: user})
}
