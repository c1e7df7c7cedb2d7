package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

func names(reqs []*requirement.Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Name
	}
	return out
}

func chain() *registry.Registry {
	reg := registry.New()
	reg.AddExternal("jquery.ui.accordion.js", "js", "jquery.ui.core.js", "jquery.effects.scale.js")
	reg.AddExternal("jquery.effects.scale.js", "js", "jquery.js", "jquery.effects.core.js")
	reg.AddExternal("jquery.ui.core.js", "js", "jquery.js")
	reg.AddExternal("jquery.js", "js")
	reg.AddExternal("jquery.effects.core.js", "js", "jquery.js")
	return reg
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *registry.Registry
	}{
		{"jquery chain", chain},
		{"mixed", func() *registry.Registry {
			reg := registry.New()
			reg.AddInline("init", requirement.Text("App.start();"), "js", "app.js", "missing.js")
			reg.AddExternal("app.js", "js", "jquery.js")
			reg.AddExternal("site.css", "css")
			reg.AddExternal("jquery.js", "js")
			reg.AddExternal("app.js", "js", "polyfill.js")
			return reg
		}},
		{"empty", func() *registry.Registry { return registry.New() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.build()

			var buf bytes.Buffer
			if err := WriteJSON(orig, &buf); err != nil {
				t.Fatalf("WriteJSON() error: %v", err)
			}
			got, err := ReadJSON(&buf)
			if err != nil {
				t.Fatalf("ReadJSON() error: %v", err)
			}

			if a, b := names(orig.Sorted()), names(got.Sorted()); !slices.Equal(a, b) {
				t.Errorf("Sorted() after round trip = %v, want %v", b, a)
			}
			if !slices.Equal(orig.Graph().IDs(), got.Graph().IDs()) {
				t.Errorf("graph order = %v, want %v", got.Graph().IDs(), orig.Graph().IDs())
			}
			if !slices.Equal(orig.Graph().Edges(), got.Graph().Edges()) {
				t.Errorf("edges = %v, want %v", got.Graph().Edges(), orig.Graph().Edges())
			}
		})
	}
}

func TestWriteJSON_Nodes(t *testing.T) {
	reg := registry.New()
	reg.AddInline("init", requirement.Text("App.start();"), "js", "missing.js")
	reg.AddInline("lazy", requirement.ContentFunc(func(any) (string, error) { return "x", nil }), "js")
	reg.AddExternal("site.css", "css")

	var buf bytes.Buffer
	if err := WriteJSON(reg, &buf); err != nil {
		t.Fatal(err)
	}
	var out graph
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}

	byID := make(map[string]node)
	for _, n := range out.Nodes {
		byID[n.ID] = n
	}
	if n := byID["init"]; n.Kind != "inline" || n.Content == nil || *n.Content != "App.start();" {
		t.Errorf("init = %+v", n)
	}
	if n := byID["lazy"]; n.Content == nil || *n.Content != "" {
		t.Errorf("lazy content = %+v, want empty string", n)
	}
	if n := byID["missing.js"]; !n.Dangling || n.Kind != "" {
		t.Errorf("missing.js = %+v, want dangling", n)
	}
	if n := byID["site.css"]; n.Kind != "external" || n.Group != "css" || n.Content != nil {
		t.Errorf("site.css = %+v", n)
	}
}

func TestWriteJSON_NilRegistry(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(strings.Fields(buf.String()), ""); got != `{"nodes":[],"edges":[]}` {
		t.Errorf("WriteJSON(nil) = %s", got)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"nodes": [`},
		{"empty id", `{"nodes": [{"id": ""}], "edges": []}`},
		{"duplicate", `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`},
		{"unknown edge", `{"nodes": [{"id": "a"}], "edges": [{"from": "b", "to": "a"}]}`},
		{"unknown kind", `{"nodes": [{"id": "a", "kind": "image"}], "edges": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidManifest) {
				t.Errorf("ReadJSON() error = %v, want INVALID_MANIFEST", err)
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(chain(), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	reg, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if reg.Len() != 5 {
		t.Errorf("Len() = %d, want 5", reg.Len())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
