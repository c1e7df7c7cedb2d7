// Package alias rewrites requirement and group names to their canonical form
// and infers a requirement's group from its name.
package alias

import (
	"maps"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/matzehuels/requiremedia/pkg/config"
)

// Resolver maps requested names to canonical ones. The zero value maps
// every name to itself.
type Resolver struct {
	requirements map[string]string
	groups       map[string]string
}

// New creates a resolver from requirement and group alias tables. The maps
// are copied.
func New(requirements, groups map[string]string) *Resolver {
	return &Resolver{
		requirements: maps.Clone(requirements),
		groups:       maps.Clone(groups),
	}
}

// FromConfig creates a resolver from the alias tables of cfg.
func FromConfig(cfg config.Config) *Resolver {
	return &Resolver{
		requirements: cfg.RequirementAliasMap(),
		groups:       cfg.GroupAliasMap(),
	}
}

// Requirement returns the canonical name of a requirement.
// Aliases are applied once; they do not chain.
func (r *Resolver) Requirement(name string) string {
	if r == nil {
		return name
	}
	if to, ok := r.requirements[name]; ok && to != "" {
		return to
	}
	return name
}

// Requirements resolves every name, returning a new slice.
func (r *Resolver) Requirements(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = r.Requirement(n)
	}
	return out
}

// Group returns the canonical name of a group.
func (r *Resolver) Group(name string) string {
	if r == nil {
		return name
	}
	if to, ok := r.groups[name]; ok && to != "" {
		return to
	}
	return name
}

// InferGroup returns the file extension of name's URL path when it is one of
// groups, and "" otherwise. Query strings and fragments are ignored, so
// "http://example.com/reset.css?v=2" belongs to "css".
func InferGroup(name string, groups []string) string {
	p := name
	if u, err := url.Parse(name); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ext != "" && slices.Contains(groups, ext) {
		return ext
	}
	return ""
}
