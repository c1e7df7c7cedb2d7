package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/matzehuels/requiremedia/pkg/directive"
	"github.com/matzehuels/requiremedia/pkg/errors"
	graphio "github.com/matzehuels/requiremedia/pkg/io"
	"github.com/matzehuels/requiremedia/pkg/manifest"
	"github.com/matzehuels/requiremedia/pkg/page"
	"github.com/matzehuels/requiremedia/pkg/registry"
)

// isPage reports whether path names a page template rather than a manifest.
func isPage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".tmpl", ".gohtml":
		return true
	}
	return false
}

// isGraph reports whether path names a JSON graph written by graph -f json.
func isGraph(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (c *CLI) newRegistry() *registry.Registry {
	return registry.New(registry.WithLogger(c.Logger))
}

// applyDirectives registers each "require ..." line on reg. Other directive
// kinds need template context and are rejected.
func applyDirectives(reg *registry.Registry, parser *directive.Parser, lines []string) error {
	for _, line := range lines {
		d, err := parser.ParseLine(line)
		if err != nil {
			return err
		}
		req, ok := d.(directive.Require)
		if !ok {
			return errors.New(errors.ErrCodeUnsupported, "only require directives can be given on the command line, got %q", d.Tag())
		}
		req.Apply(reg)
	}
	return nil
}

// loadManifest registers the entries of the manifest at path on reg.
func (c *CLI) loadManifest(tk *toolkit, reg *registry.Registry, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	m.Apply(reg, tk.aliases, tk.table.Groups())
	c.Logger.Debug("loaded manifest", "path", path, "entries", len(m.Requirements))
	return nil
}

// executePage runs the page template at path, together with the partials
// in includes, against reg and writes the result to w.
func (c *CLI) executePage(w io.Writer, tk *toolkit, reg *registry.Registry, path string, includes []string, data map[string]string) error {
	if data == nil {
		data = map[string]string{}
	}
	tmpl, err := page.ParseFiles(append([]string{path}, includes...)...)
	if err != nil {
		return err
	}
	pages := page.New(tmpl, tk.parser, tk.table, page.WithLogger(c.Logger))
	return pages.Execute(w, reg, filepath.Base(path), data)
}

// load builds a registry from a manifest, a JSON graph or a page template plus the extra
// directives. Directives are registered after manifest entries but before a
// page runs. Page output is discarded.
func (c *CLI) load(tk *toolkit, path string, directives, includes []string, data map[string]string) (*registry.Registry, error) {
	reg := c.newRegistry()
	if isPage(path) {
		if err := applyDirectives(reg, tk.parser, directives); err != nil {
			return nil, err
		}
		if err := c.executePage(io.Discard, tk, reg, path, includes, data); err != nil {
			return nil, err
		}
		return reg, nil
	}
	if isGraph(path) {
		imported, err := graphio.ImportJSON(path, registry.WithLogger(c.Logger))
		if err != nil {
			return nil, err
		}
		reg = imported
	} else if err := c.loadManifest(tk, reg, path); err != nil {
		return nil, err
	}
	if err := applyDirectives(reg, tk.parser, directives); err != nil {
		return nil, err
	}
	return reg, nil
}
