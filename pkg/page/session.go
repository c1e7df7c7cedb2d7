package page

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/requiremedia/pkg/directive"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/render"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

const (
	placeholderPrefix = "<!--requiremedia:"
	placeholderSuffix = "-->"
)

// Funcs returns the directive functions for parsing templates. They do
// nothing; a [Session] replaces them before execution.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"require":            func(...string) string { return "" },
		"requireInline":      func(...string) string { return "" },
		"requireBlock":       func(...string) string { return "" },
		"renderRequirements": func(...string) template.HTML { return "" },
	}
}

// Session binds the directive functions to one registry for one execution.
type Session struct {
	reg    *registry.Registry
	parser *directive.Parser
	table  *render.Table
	rc     any
	tmpl   *template.Template
	logger *log.Logger

	pending map[string]*render.Deferred
	tokens  []string
}

// Option configures a Session or Pages.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger that receives render errors.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewSession creates a session for reg. rc is handed to inline content when
// the requirements are rendered; it is normally the page data. A nil table
// means [render.DefaultTable]; a nil parser recognizes the table's groups
// without aliases.
func NewSession(reg *registry.Registry, parser *directive.Parser, table *render.Table, rc any, opts ...Option) *Session {
	o := buildOptions(opts)
	if table == nil {
		table = render.DefaultTable()
	}
	if parser == nil {
		parser = directive.NewParser(nil, table.Groups())
	}
	return &Session{
		reg:     reg,
		parser:  parser,
		table:   table,
		rc:      rc,
		logger:  o.logger,
		pending: make(map[string]*render.Deferred),
	}
}

// Bind installs the session's functions on t. t must have been parsed with
// [Funcs] and must not have been executed.
func (s *Session) Bind(t *template.Template) {
	s.tmpl = t
	t.Funcs(s.FuncMap())
}

// FuncMap returns the directive functions bound to this session.
func (s *Session) FuncMap() template.FuncMap {
	return template.FuncMap{
		"require":            s.require,
		"requireInline":      s.requireInline,
		"requireBlock":       s.requireBlock,
		"renderRequirements": s.renderRequirements,
	}
}

func (s *Session) require(args ...string) (string, error) {
	d, err := s.parser.ParseRequire(args)
	if err != nil {
		return "", err
	}
	d.Apply(s.reg)
	return "", nil
}

// requireInline takes the directive arguments followed by the content.
func (s *Session) requireInline(args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New(errors.ErrCodeInvalidDirective, "requireInline requires content")
	}
	content := args[len(args)-1]
	d, err := s.parser.ParseRequireInline(args[:len(args)-1])
	if err != nil {
		return "", err
	}
	d.Apply(s.reg, requirement.Text(content))
	return "", nil
}

// requireBlock takes name, group, template name and dependencies.
func (s *Session) requireBlock(args ...string) (string, error) {
	if len(args) < 3 {
		return "", errors.New(errors.ErrCodeInvalidDirective, "requireBlock requires three arguments: name, group and template")
	}
	block := args[2]
	if s.tmpl == nil || s.tmpl.Lookup(block) == nil {
		return "", errors.New(errors.ErrCodeNotFound, "requireBlock: no template %q", block)
	}
	d, err := s.parser.ParseRequireInline(append([]string{args[0], args[1]}, args[3:]...))
	if err != nil {
		return "", err
	}

	tmpl := s.tmpl
	d.Apply(s.reg, requirement.ContentFunc(func(rc any) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, block, rc); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidTemplate, err, "block %q", block)
		}
		return buf.String(), nil
	}))
	return "", nil
}

func (s *Session) renderRequirements(groups ...string) template.HTML {
	if s.reg == nil {
		return ""
	}
	d := s.parser.ParseRenderRequirements(groups)
	token := placeholderPrefix + uuid.NewString() + placeholderSuffix
	s.pending[token] = render.NewDeferred(s.reg, s.table, s.rc, d.Groups, render.WithLogger(s.logger))
	s.tokens = append(s.tokens, token)
	return template.HTML(token)
}

// Finalize replaces every placeholder in out with the rendered requirements.
// Placeholders are rendered in the order they were created.
func (s *Session) Finalize(out string) string {
	if len(s.tokens) == 0 {
		return out
	}
	pairs := make([]string, 0, 2*len(s.tokens))
	for _, token := range s.tokens {
		if strings.Contains(out, token) {
			pairs = append(pairs, token, s.pending[token].Render())
		}
	}
	return strings.NewReplacer(pairs...).Replace(out)
}
