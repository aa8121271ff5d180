package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/librisdev/libris/internal/api"
	apiMiddleware "github.com/librisdev/libris/internal/api/middleware"
	"golang.org/x/time/rate"
)

// setupRouter configures the application router with all routes and
// middleware. Login and health are public; everything under /books
// requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))
	r.Use(apiMiddleware.RateLimit(rate.Limit(2), 4))

	authHandler := api.NewAuthHandler(app.credentials, app.jwtService, app.logger)
	healthHandler := api.NewHealthHandler(app.bookStore, app.logger)
	bookHandler := api.NewBookHandler(app.bookStore, app.validator, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Post("/login", authHandler.Login)
	r.Get("/health", healthHandler.Health)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/books", bookHandler.ListBooks)
		r.Post("/books", bookHandler.CreateBook)
		r.Get("/books/{id}", bookHandler.GetBook)
		r.Put("/books/{id}", bookHandler.UpdateBook)
		r.Delete("/books/{id}", bookHandler.DeleteBook)
	})

	return r
}
