package main

import (
	"log/slog"
	"net/http"
	"time"

	"lexiflow/internal/config"
	"lexiflow/internal/handlers"
	"lexiflow/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type routerDeps struct {
	groupHandler    *handlers.VocabularyGroupHandler
	categoryHandler *handlers.CategoryHandler
	healthHandler   *handlers.HealthHandler
}

func newRouter(cfg *config.Config, logger *slog.Logger, deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(middleware.RecoverMiddleware)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", deps.healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			r.Use(middleware.JWTAuthMiddleware(cfg))
		} else {
			logger.Warn("Authentication disabled: X-User-ID header is trusted without validation")
			r.Use(middleware.DevUserContextMiddleware)
		}

		r.Route("/vocabulary-groups", func(r chi.Router) {
			r.Get("/", deps.groupHandler.ListGroups)
			r.Post("/", deps.groupHandler.CreateGroup)
			r.Get("/{id}", deps.groupHandler.GetGroup)
			r.Put("/{id}", deps.groupHandler.UpdateGroup)
			r.Delete("/{id}", deps.groupHandler.DeleteGroup)
			r.Get("/{id}/vocabularies", deps.groupHandler.ListVocabularies)
			r.Post("/{id}/vocabularies", deps.groupHandler.AddVocabulary)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", deps.categoryHandler.ListCategories)
			r.Post("/", deps.categoryHandler.CreateCategory)
			r.Get("/{id}", deps.categoryHandler.GetCategory)
		})
	})

	return r
}
