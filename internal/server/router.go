package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"calc-converter/internal/handlers"
	"calc-converter/internal/observability"
)

// RouteRegistrar mounts a domain's endpoints.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

func NewRouter(domains ...RouteRegistrar) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	for _, d := range domains {
		d.RegisterRoutes(r)
	}

	return r
}
