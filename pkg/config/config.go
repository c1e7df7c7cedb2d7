package config

import (
	"maps"
	"slices"

	"github.com/matzehuels/requiremedia/pkg/errors"
)

// Default values, matching the built-in script and stylesheet renderers.
const (
	DefaultBaseURL = "/media/"

	JavaScriptExternalTemplate = `<script src="%s"></script>`
	JavaScriptInlineTemplate   = `<script>%s</script>`
	CSSExternalTemplate        = `<link rel="stylesheet" type="text/css" href="%s">`
	CSSInlineTemplate          = `<style>%s</style>`
)

// Renderer describes one group's renderer.
type Renderer struct {
	// Directory is joined to the base URL to form the group's base.
	Directory string `mapstructure:"directory"`
	// ExternalTemplate receives the resolved URL through its single %s.
	ExternalTemplate string `mapstructure:"external_template"`
	// InlineTemplate receives the rendered content through its single %s.
	InlineTemplate string `mapstructure:"inline_template"`
}

// Alias maps a requested name to its canonical name.
type Alias struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Config is the immutable application configuration.
// Treat values as read-only; constructors copy what they keep.
type Config struct {
	// BaseURL is the media root, e.g. "/media/" or "https://cdn.example.com/".
	BaseURL string `mapstructure:"base_url"`
	// Groups lists the recognized groups, in default render order.
	Groups []string `mapstructure:"groups"`
	// Renderers maps group names to renderer settings.
	Renderers map[string]Renderer `mapstructure:"renderers"`
	// RequirementAliases rewrites requirement names before registration.
	RequirementAliases []Alias `mapstructure:"requirement_aliases"`
	// GroupAliases rewrites group names before registration.
	GroupAliases []Alias `mapstructure:"group_aliases"`
}

// Default returns the built-in configuration: base "/media/", groups css and
// js, and one renderer per group.
func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Groups:  []string{"css", "js"},
		Renderers: map[string]Renderer{
			"js": {
				Directory:        "js/",
				ExternalTemplate: JavaScriptExternalTemplate,
				InlineTemplate:   JavaScriptInlineTemplate,
			},
			"css": {
				Directory:        "css/",
				ExternalTemplate: CSSExternalTemplate,
				InlineTemplate:   CSSInlineTemplate,
			},
		},
	}
}

// Validate checks the base URL, group names, renderer templates and aliases.
func (c Config) Validate() error {
	if err := errors.ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}

	for _, g := range c.Groups {
		if g == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "recognized groups cannot contain an empty name")
		}
		if err := errors.ValidateGroup(g); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "groups")
		}
	}

	for _, group := range slices.Sorted(maps.Keys(c.Renderers)) {
		r := c.Renderers[group]
		if err := errors.ValidateGroup(group); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "renderers")
		}
		if err := errors.ValidateTemplate(r.ExternalTemplate); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "renderers.%s.external_template", group)
		}
		if err := errors.ValidateTemplate(r.InlineTemplate); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "renderers.%s.inline_template", group)
		}
	}

	for _, a := range slices.Concat(c.RequirementAliases, c.GroupAliases) {
		if a.From == "" || a.To == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "alias needs both from and to (got %q -> %q)", a.From, a.To)
		}
	}
	return nil
}

// RequirementAliasMap returns the requirement aliases as a fresh map.
// Later entries win over earlier ones with the same From.
func (c Config) RequirementAliasMap() map[string]string {
	return aliasMap(c.RequirementAliases)
}

// GroupAliasMap returns the group aliases as a fresh map.
func (c Config) GroupAliasMap() map[string]string {
	return aliasMap(c.GroupAliases)
}

func aliasMap(aliases []Alias) map[string]string {
	m := make(map[string]string, len(aliases))
	for _, a := range aliases {
		m[a.From] = a.To
	}
	return m
}
