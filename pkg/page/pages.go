package page

import (
	"bytes"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/requiremedia/pkg/directive"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/render"
)

// Pages executes the templates of a parsed set against per-request
// registries. It is safe for concurrent use.
type Pages struct {
	tmpl   *template.Template
	parser *directive.Parser
	table  *render.Table
	logger *log.Logger
}

// New creates a Pages for tmpl, which must have been parsed with [Funcs] and
// is never executed directly.
func New(tmpl *template.Template, parser *directive.Parser, table *render.Table, opts ...Option) *Pages {
	o := buildOptions(opts)
	return &Pages{tmpl: tmpl, parser: parser, table: table, logger: o.logger}
}

// ParseFS parses the templates of fsys matching patterns, with the
// directive functions declared.
func ParseFS(fsys fs.FS, patterns ...string) (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse templates")
	}
	return t, nil
}

// ParseFiles parses the named files, with the directive functions declared.
// The first file's base name becomes the template name.
func ParseFiles(files ...string) (*template.Template, error) {
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no template files")
	}
	t, err := template.New(path.Base(files[0])).Funcs(Funcs()).ParseFiles(files...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse templates")
	}
	return t, nil
}

// Has reports whether the set defines a template called name.
func (p *Pages) Has(name string) bool {
	return p.tmpl.Lookup(name) != nil
}

// Execute runs the template called name with data, registering
// requirements on reg, and writes the finalized output to w. Nothing is
// written when execution fails.
func (p *Pages) Execute(w io.Writer, reg *registry.Registry, name string, data any) error {
	if !p.Has(name) {
		return errors.New(errors.ErrCodeNotFound, "template %q not found", name)
	}
	clone, err := p.tmpl.Clone()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "clone templates")
	}

	s := NewSession(reg, p.parser, p.table, data, WithLogger(p.logger))
	s.Bind(clone)

	var buf bytes.Buffer
	if err := clone.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "execute %s", name)
	}
	if _, err := io.WriteString(w, s.Finalize(buf.String())); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
	}
	return nil
}
