// Package middleware provides net/http middleware for requiremedia.
//
// [RequireMedia] attaches a fresh registry to every request; handlers fetch
// it with [registry.FromContext] and pass it to the page renderer:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Observe, middleware.RequireMedia())
//	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
//	    pages.Execute(w, registry.FromContext(req.Context()), "index.html", nil)
//	})
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/requiremedia/pkg/observability"
	"github.com/matzehuels/requiremedia/pkg/registry"
)

// RequireMedia returns middleware that stores a new registry, built with
// opts, in each request's context. The registry lives as long as the
// request and is never shared.
func RequireMedia(opts ...registry.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reg := registry.New(opts...)
			next.ServeHTTP(w, r.WithContext(registry.WithRegistry(r.Context(), reg)))
		})
	}
}

// Observe reports every request to the HTTP hooks of the observability
// package, with the response status and duration.
func Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
