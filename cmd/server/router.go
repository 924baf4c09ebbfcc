package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/casefile/internal/api"
	apiMiddleware "github.com/phrazzld/casefile/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Identity)

	caseHandler := api.NewCaseHandler(app.caseService, app.logger)
	authHandler := api.NewAuthHandler(app.identityService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/keys", authHandler.GenerateKeys)
			r.Post("/signup", authHandler.SignUp)
			r.Post("/login", authHandler.LogIn)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireIdentity)
				r.Post("/logout", authHandler.LogOut)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/cases", func(r chi.Router) {
			r.Get("/", caseHandler.ListCases)
			r.Get("/{id}", caseHandler.GetCase)
			r.Post("/{id}/solve", caseHandler.SolveCase)

			r.With(apiMiddleware.RequireIdentity).Post("/", caseHandler.CreateCase)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
