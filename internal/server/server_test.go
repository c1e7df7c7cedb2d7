package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/requiremedia/pkg/cache"
	"github.com/matzehuels/requiremedia/pkg/page"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/render/nodelink"
)

var pagesFS = fstest.MapFS{
	"index.html": {Data: []byte(`<head>{{ renderRequirements "css" }}</head>` +
		`{{ require "js" "app.js" "jquery.js" }}{{ require "jquery.js" }}{{ require "css" "site.css" }}` +
		`<p>{{ .Path }}</p>{{ renderRequirements "js" }}`)},
	"about.html":  {Data: []byte(`{{ require "about.css" }}{{ renderRequirements }}`)},
	"broken.html": {Data: []byte(`{{ require "js" }}`)},
}

func newServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	tmpl, err := page.ParseFS(pagesFS, "*.html")
	if err != nil {
		t.Fatalf("ParseFS() error: %v", err)
	}
	s := New(page.New(tmpl, nil, nil), opts...)
	t.Cleanup(func() { s.Close() })
	return s
}

func get(s http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_Pages(t *testing.T) {
	s := newServer(t)

	rec := get(s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	want := `<head><link rel="stylesheet" type="text/css" href="/media/css/site.css"></head>` +
		`<p>/</p>` +
		`<script src="/media/js/jquery.js"></script><script src="/media/js/app.js"></script>`
	if got := rec.Body.String(); got != want {
		t.Errorf("GET / body =\n%s\nwant\n%s", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	// A second request starts from an empty registry.
	rec = get(s, "/about")
	if got, want := rec.Body.String(), `<link rel="stylesheet" type="text/css" href="/media/css/about.css">`; got != want {
		t.Errorf("GET /about body = %q, want %q", got, want)
	}
}

func TestServer_Errors(t *testing.T) {
	var logs bytes.Buffer
	s := newServer(t, WithLogger(log.New(&logs)))

	tests := []struct {
		target string
		code   int
	}{
		{"/missing", http.StatusNotFound},
		{"/broken", http.StatusInternalServerError},
		{"/_graph/missing.svg", http.StatusNotFound},
		{"/_graph/broken.svg", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if rec := get(s, tt.target); rec.Code != tt.code {
			t.Errorf("GET %s = %d, want %d", tt.target, rec.Code, tt.code)
		}
	}
	if !strings.Contains(logs.String(), "request failed") {
		t.Errorf("expected failure log, got %q", logs.String())
	}
}

func TestServer_Health(t *testing.T) {
	rec := get(newServer(t), "/_health")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /_health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestServer_GraphFromCache(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour, time.Hour)
	s := newServer(t, WithCache(c))

	// Build the same registry the handler will build and seed its SVG.
	tmpl, _ := page.ParseFS(pagesFS, "*.html")
	reg := registry.New()
	var sink bytes.Buffer
	if err := page.New(tmpl, nil, nil).Execute(&sink, reg, "about.html", map[string]any{}); err != nil {
		t.Fatal(err)
	}
	dot := nodelink.ToDOT(reg, nodelink.Options{})
	c.Set(context.Background(), cache.GraphKey(dot, "svg"), []byte("<svg>cached</svg>"), 0)

	rec := get(s, "/_graph/about.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /_graph/about.svg = %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "<svg>cached</svg>" {
		t.Errorf("body = %q, want cached SVG", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
}
