// Package server serves page templates over HTTP, giving each request its
// own requirement registry.
//
// Routes:
//
//	GET /                    renders index.html
//	GET /{name}              renders {name}.html
//	GET /_graph/{name}.svg   the dependency graph of {name}.html
//	GET /_health             liveness probe
//
// Graph SVGs are cached by the DOT source they were drawn from.
package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/requiremedia/pkg/cache"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/middleware"
	"github.com/matzehuels/requiremedia/pkg/page"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/render/nodelink"
)

// graphTTL is how long a rendered graph stays in the cache.
const graphTTL = time.Hour

// Server is the HTTP front end for a set of page templates.
type Server struct {
	pages  *page.Pages
	cache  cache.Cache
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCache sets the graph cache. The default keeps graphs in memory.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
		}
	}
}

// New creates a server for pages.
func New(pages *page.Pages, opts ...Option) *Server {
	s := &Server{
		pages:  pages,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.NewMemoryCache(cache.DefaultExpiration, cache.DefaultCleanupInterval)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observe)
	r.Use(middleware.RequireMedia(registry.WithLogger(s.logger)))

	r.Get("/_health", s.handleHealth)
	r.Get("/_graph/{name}.svg", s.handleGraph)
	r.Get("/", s.handlePage)
	r.Get("/{name}", s.handlePage)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the graph cache.
func (s *Server) Close() error { return s.cache.Close() }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := s.resolve(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := s.pages.Execute(&buf, registry.FromContext(r.Context()), tmpl, pageData(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := s.resolve(w, r)
	if !ok {
		return
	}

	reg := registry.FromContext(r.Context())
	if err := s.pages.Execute(io.Discard, reg, tmpl, pageData(r)); err != nil {
		s.fail(w, r, err)
		return
	}

	dot := nodelink.ToDOT(reg, nodelink.Options{Detailed: r.URL.Query().Has("detailed")})
	svg, err := cache.Fetch(r.Context(), s.cache, cache.GraphKey(dot, "svg"), graphTTL, func() ([]byte, error) {
		return nodelink.RenderSVG(r.Context(), dot)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// resolve maps the {name} parameter to a template name, writing an error
// response when there is none.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if name == "" {
		name = "index"
	}
	if err := errors.ValidatePath(name); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return "", false
	}
	tmpl := name + ".html"
	if !s.pages.Has(tmpl) {
		http.NotFound(w, r)
		return "", false
	}
	return tmpl, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "request_id", chimw.GetReqID(r.Context()), "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// pageData is the data every page template is executed with.
func pageData(r *http.Request) map[string]any {
	return map[string]any{
		"Path":  r.URL.Path,
		"Query": r.URL.Query(),
	}
}
