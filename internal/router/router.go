package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/auth"
	"restaurant-hub/internal/config"
	"restaurant-hub/internal/handler"
	"restaurant-hub/internal/middleware"
	"restaurant-hub/internal/repository"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Category  *handler.CategoryHandler
	MenuItem  *handler.MenuItemHandler
	Contact   *handler.ContactHandler
	Image     *handler.ImageHandler
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Health    *handler.HealthHandler
	WS        *handler.WSHandler
}

// New builds the HTTP routing table. Public reads bypass the session
// checks; every mutating route requires an admin session.
func New(h Handlers, sessions *auth.SessionManager, users repository.UserRepository, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticated := middleware.Authenticated(sessions, users, logger)
	adminOnly := middleware.AdminRequired(logger)

	r.Route("/api", func(r chi.Router) {
		// Public reads.
		r.Get("/categories", h.Category.List)
		r.Get("/menu-items", h.MenuItem.List)
		r.Get("/menu-items/featured", h.MenuItem.ListFeatured)
		r.Get("/menu-items/{id}", h.MenuItem.GetByID)
		r.Get("/menu-items/{id}/images", h.Image.ListMenuImages)
		r.Get("/contact-info", h.Contact.Get)
		r.Get("/site-images", h.Image.ListSiteImages)

		// Session lifecycle. The probes answer 200 for anonymous
		// callers, so they load the session softly instead of gating.
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionUser(sessions, users, logger))
			r.Get("/login", h.Auth.Probe)
			r.Get("/auth/user", h.Auth.CurrentUser)
		})

		// Admin mutations.
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)

			r.Post("/categories", h.Category.Create)
			r.Put("/categories/{id}", h.Category.Update)
			r.Delete("/categories/{id}", h.Category.Delete)

			r.Post("/menu-items", h.MenuItem.Create)
			r.Put("/menu-items/{id}", h.MenuItem.Update)
			r.Delete("/menu-items/{id}", h.MenuItem.Delete)

			r.Put("/contact-info", h.Contact.Save)
			r.Post("/contact-info", h.Contact.Save)

			r.Post("/images/upload/site", h.Image.UploadSiteImage)
			r.Post("/images/upload/menu", h.Image.UploadMenuImage)
			r.Delete("/site-images/{id}", h.Image.DeleteSiteImage)

			r.Get("/dashboard/stats", h.Dashboard.Stats)
		})

		// Diagnostics and realtime.
		r.Get("/health", h.Health.Health)
		r.Get("/test", h.Health.Test)
		r.Get("/test-db", h.Health.TestDB)
		r.Get("/ws", h.WS.Serve)
	})

	return r
}
