package directive

import (
	"slices"
	"strings"

	"github.com/matzehuels/requiremedia/pkg/alias"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// Directive tags.
const (
	TagRequire            = "require"
	TagRequireInline      = "require_inline"
	TagRenderRequirements = "render_requirements"
)

// Directive is a parsed template directive.
type Directive interface {
	Tag() string
}

// Require registers an external requirement.
type Require struct {
	Name      string
	Group     string
	DependsOn []string
}

// Tag returns "require".
func (Require) Tag() string { return TagRequire }

// Apply registers the requirement on reg. A nil reg is a no-op.
func (d Require) Apply(reg *registry.Registry) {
	if reg == nil {
		return
	}
	reg.AddExternal(d.Name, d.Group, d.DependsOn...)
}

// RequireInline registers an inline requirement whose content is supplied
// by the caller, typically the body enclosed by the directive.
type RequireInline struct {
	Name      string
	Group     string
	DependsOn []string
}

// Tag returns "require_inline".
func (RequireInline) Tag() string { return TagRequireInline }

// Apply registers the requirement with content on reg. A nil reg is a no-op.
func (d RequireInline) Apply(reg *registry.Registry, content requirement.Content) {
	if reg == nil {
		return
	}
	reg.AddInline(d.Name, content, d.Group, d.DependsOn...)
}

// RenderRequirements marks where the requirements of Groups are rendered.
type RenderRequirements struct {
	Groups []string
}

// Tag returns "render_requirements".
func (RenderRequirements) Tag() string { return TagRenderRequirements }

// Parser parses directive arguments against a set of recognized groups.
type Parser struct {
	aliases *alias.Resolver
	groups  []string
}

// NewParser creates a parser. A nil resolver disables aliasing.
func NewParser(aliases *alias.Resolver, groups []string) *Parser {
	return &Parser{aliases: aliases, groups: slices.Clone(groups)}
}

// Groups returns the recognized groups.
func (p *Parser) Groups() []string { return slices.Clone(p.groups) }

// ParseLine parses a whitespace-separated directive such as
// "require js jquery-ui.js jquery.js".
func (p *Parser) ParseLine(line string) (Directive, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDirective, "empty directive")
	}
	return p.Parse(fields[0], fields[1:])
}

// Parse parses the arguments of tag.
func (p *Parser) Parse(tag string, args []string) (Directive, error) {
	switch tag {
	case TagRequire:
		return p.ParseRequire(args)
	case TagRequireInline:
		return p.ParseRequireInline(args)
	case TagRenderRequirements:
		return p.ParseRenderRequirements(args), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidDirective, "unknown directive %q", tag)
	}
}

// ParseRequire parses "[group] name [deps...]".
func (p *Parser) ParseRequire(args []string) (Require, error) {
	if len(args) == 0 {
		return Require{}, errors.New(errors.ErrCodeInvalidDirective, "%s requires one or more arguments", TagRequire)
	}

	var group string
	if candidate := p.aliases.Group(args[0]); slices.Contains(p.groups, candidate) {
		if len(args) < 2 {
			return Require{}, errors.New(errors.ErrCodeInvalidDirective, "%s requires a requirement to be specified", TagRequire)
		}
		group = candidate
		args = args[1:]
	}

	name := p.aliases.Requirement(args[0])
	if err := errors.ValidateName(name); err != nil {
		return Require{}, errors.Wrap(errors.ErrCodeInvalidDirective, err, "%s", TagRequire)
	}
	if group == "" {
		group = alias.InferGroup(name, p.groups)
	}
	return Require{
		Name:      name,
		Group:     group,
		DependsOn: p.aliases.Requirements(args[1:]),
	}, nil
}

// ParseRequireInline parses "name group [deps...]".
func (p *Parser) ParseRequireInline(args []string) (RequireInline, error) {
	if len(args) < 2 {
		return RequireInline{}, errors.New(errors.ErrCodeInvalidDirective, "%s requires two arguments: name and group", TagRequireInline)
	}

	name := p.aliases.Requirement(args[0])
	if err := errors.ValidateName(name); err != nil {
		return RequireInline{}, errors.Wrap(errors.ErrCodeInvalidDirective, err, "%s", TagRequireInline)
	}
	group := p.aliases.Group(args[1])
	if err := errors.ValidateGroup(group); err != nil {
		return RequireInline{}, errors.Wrap(errors.ErrCodeInvalidDirective, err, "%s", TagRequireInline)
	}
	return RequireInline{
		Name:      name,
		Group:     group,
		DependsOn: p.aliases.Requirements(args[2:]),
	}, nil
}

// ParseRenderRequirements parses "[groups...]". Group names are not aliased
// or checked; unknown groups simply render nothing.
func (p *Parser) ParseRenderRequirements(args []string) RenderRequirements {
	if len(args) == 0 {
		return RenderRequirements{Groups: slices.Clone(p.groups)}
	}
	return RenderRequirements{Groups: slices.Clone(args)}
}
