package render

import (
	"maps"
	"slices"

	"github.com/matzehuels/requiremedia/pkg/config"
	"github.com/matzehuels/requiremedia/pkg/errors"
)

// Table maps groups to renderers. It is immutable once built.
type Table struct {
	renderers map[string]Renderer
	groups    []string
}

// NewTable builds a TemplateRenderer for every renderer entry of cfg.
func NewTable(cfg config.Config) (*Table, error) {
	t := &Table{
		renderers: make(map[string]Renderer, len(cfg.Renderers)),
		groups:    slices.Clone(cfg.Groups),
	}
	for _, group := range slices.Sorted(maps.Keys(cfg.Renderers)) {
		rc := cfg.Renderers[group]
		r, err := NewTemplateRenderer(cfg.BaseURL, rc.Directory, rc.ExternalTemplate, rc.InlineTemplate)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "renderer for group %q", group)
		}
		t.renderers[group] = r
	}
	return t, nil
}

// DefaultTable returns the table of [config.Default].
func DefaultTable() *Table {
	t, err := NewTable(config.Default())
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a copy of t that renders group with r. The group is appended
// to the recognized groups if it is not already one of them.
func (t *Table) With(group string, r Renderer) *Table {
	out := &Table{
		renderers: maps.Clone(t.renderers),
		groups:    slices.Clone(t.groups),
	}
	out.renderers[group] = r
	if !slices.Contains(out.groups, group) {
		out.groups = append(out.groups, group)
	}
	return out
}

// Get returns the renderer of group.
func (t *Table) Get(group string) (Renderer, bool) {
	r, ok := t.renderers[group]
	return r, ok
}

// Groups returns the recognized groups in default output order.
func (t *Table) Groups() []string { return slices.Clone(t.groups) }

// Recognizes reports whether group is one of the recognized groups.
func (t *Table) Recognizes(group string) bool { return slices.Contains(t.groups, group) }
