package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/auth"
	"restaurant-hub/internal/model"
	"restaurant-hub/internal/repository"
)

type contextKey string

// userContextKey carries the authenticated *model.User.
const userContextKey contextKey = "user"

// UserFromContext returns the authenticated user, or nil outside an
// authenticated request.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// ContextWithUser returns a context carrying the given user, as the
// session middleware would produce it.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// Authenticated validates the session cookie and loads the user from
// the database. The user record is re-read on every request so role
// changes and deletions take effect immediately.
func Authenticated(sessions *auth.SessionManager, users repository.UserRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				writeUnauthorized(w, http.StatusUnauthorized, model.ErrNotAuthenticated.Message)
				return
			}

			claims, err := sessions.Parse(cookie.Value)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid session token")
				writeUnauthorized(w, http.StatusUnauthorized, model.ErrNotAuthenticated.Message)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Error().Err(err).Int("user_id", claims.UserID).Msg("failed to load session user")
				writeUnauthorized(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn().Int("user_id", claims.UserID).Msg("session user no longer exists")
				writeUnauthorized(w, http.StatusUnauthorized, model.ErrNotAuthenticated.Message)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUser loads the session user into the context when the
// request carries a valid cookie and continues anonymously otherwise.
// Session-state probes use it to answer 200 either way.
func SessionUser(sessions *auth.SessionManager, users repository.UserRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessions.Parse(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Error().Err(err).Int("user_id", claims.UserID).Msg("failed to load session user")
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminRequired rejects authenticated users without the admin flag.
// Must run after Authenticated.
func AdminRequired(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				writeUnauthorized(w, http.StatusUnauthorized, model.ErrNotAuthenticated.Message)
				return
			}
			if !user.IsAdmin {
				logger.Warn().Int("user_id", user.ID).Str("path", r.URL.Path).Msg("admin access denied")
				writeUnauthorized(w, http.StatusUnauthorized, model.ErrAdminRequired.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.Response{Success: false, Error: message})
}
