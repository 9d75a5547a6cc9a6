package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/api/handlers"
	"github.com/profenger/feedback-hub/internal/api/middleware"
	"github.com/profenger/feedback-hub/internal/config"
	"github.com/profenger/feedback-hub/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	usersHandler := handlers.NewUsersHandler(services.Auth)
	feedbackHandler := handlers.NewFeedbackHandler(services.Submission)
	promptsHandler := handlers.NewPromptsHandler(services.Submission)

	r.Route("/api", func(r chi.Router) {
		// Liveness probe
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		})

		// Public routes
		r.Post("/auth/login", authHandler.Login)
		r.Post("/feedback", feedbackHandler.Create)
		r.Post("/prompts", promptsHandler.Create)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/feedback", feedbackHandler.List)
			r.Get("/prompts", promptsHandler.List)

			// superAdmin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)

				r.Post("/users", usersHandler.Create)
				r.Get("/users", usersHandler.List)
			})
		})
	})

	return r
}
