package requirement

import (
	"net/url"
	"slices"
)

// Kind distinguishes external from inline requirements.
type Kind int

const (
	// KindExternal is a reference to an out-of-band resource.
	KindExternal Kind = iota
	// KindInline is a block of content embedded in the document.
	KindInline
)

// String returns "external" or "inline".
func (k Kind) String() string {
	if k == KindInline {
		return "inline"
	}
	return "external"
}

// Content produces the markup of an inline requirement.
// The render context is supplied by the caller at render time.
type Content interface {
	Render(rc any) (string, error)
}

// Text is literal inline content.
type Text string

// Render returns the text unchanged.
func (t Text) Render(any) (string, error) { return string(t), nil }

// ContentFunc adapts a function to [Content].
type ContentFunc func(rc any) (string, error)

// Render calls f(rc).
func (f ContentFunc) Render(rc any) (string, error) { return f(rc) }

// Requirement is a named, optionally grouped static-asset declaration.
//
// The zero value is an untagged external requirement with an empty name;
// use [NewExternal] or [NewInline] to build one.
type Requirement struct {
	Name      string   // Unique key within a registry
	Group     string   // Optional tag such as "js" or "css"; empty when untagged
	DependsOn []string // Names that must be emitted before this one
	Content   Content  // Inline content; nil for external requirements

	kind Kind
}

// NewExternal creates an external requirement.
func NewExternal(name, group string, dependsOn ...string) *Requirement {
	return &Requirement{
		Name:      name,
		Group:     group,
		DependsOn: cloneNames(dependsOn),
		kind:      KindExternal,
	}
}

// NewInline creates an inline requirement. A nil content renders as the
// empty string.
func NewInline(name string, content Content, group string, dependsOn ...string) *Requirement {
	if content == nil {
		content = Text("")
	}
	return &Requirement{
		Name:      name,
		Group:     group,
		DependsOn: cloneNames(dependsOn),
		Content:   content,
		kind:      KindInline,
	}
}

// Kind reports whether the requirement is external or inline.
func (r *Requirement) Kind() Kind { return r.kind }

// IsInline reports whether the requirement is an inline block.
func (r *Requirement) IsInline() bool { return r.kind == KindInline }

// HasGroup reports whether the requirement is tagged with a group.
func (r *Requirement) HasGroup() bool { return r.Group != "" }

// IsQualifiedURL reports whether the name is an absolute URL with a host.
// Inline requirements are never qualified, whatever their name.
func (r *Requirement) IsQualifiedURL() bool {
	if r.IsInline() {
		return false
	}
	u, err := url.Parse(r.Name)
	if err != nil {
		return false
	}
	return u.Host != ""
}

// String returns the requirement name.
func (r *Requirement) String() string { return r.Name }

// cloneNames always returns a fresh, non-nil slice.
func cloneNames(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}
	return slices.Clone(names)
}
