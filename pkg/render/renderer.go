package render

import (
	"fmt"
	"net/url"

	"github.com/matzehuels/requiremedia/pkg/config"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// Renderer produces the markup fragment of a single requirement.
// rc is the caller's render context, passed through to inline content.
type Renderer interface {
	Render(req *requirement.Requirement, rc any) (string, error)
}

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(req *requirement.Requirement, rc any) (string, error)

// Render calls f(req, rc).
func (f RendererFunc) Render(req *requirement.Requirement, rc any) (string, error) {
	return f(req, rc)
}

// TemplateRenderer renders requirements through two one-verb templates.
type TemplateRenderer struct {
	base     *url.URL
	external string
	inline   string
}

// NewTemplateRenderer creates a renderer whose relative URLs resolve against
// baseURL joined with directory. Both templates must contain exactly one %s.
func NewTemplateRenderer(baseURL, directory, external, inline string) (*TemplateRenderer, error) {
	if err := errors.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	if err := errors.ValidateTemplate(external); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "external template")
	}
	if err := errors.ValidateTemplate(inline); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "inline template")
	}

	root, _ := url.Parse(baseURL)
	dir, err := url.Parse(directory)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "renderer directory %q", directory)
	}
	return &TemplateRenderer{
		base:     root.ResolveReference(dir),
		external: external,
		inline:   inline,
	}, nil
}

// JavaScript returns the default script renderer under base URL "/media/".
func JavaScript() *TemplateRenderer {
	return mustTemplateRenderer(config.DefaultBaseURL, "js/",
		config.JavaScriptExternalTemplate, config.JavaScriptInlineTemplate)
}

// CSS returns the default stylesheet renderer under base URL "/media/".
func CSS() *TemplateRenderer {
	return mustTemplateRenderer(config.DefaultBaseURL, "css/",
		config.CSSExternalTemplate, config.CSSInlineTemplate)
}

func mustTemplateRenderer(baseURL, directory, external, inline string) *TemplateRenderer {
	r, err := NewTemplateRenderer(baseURL, directory, external, inline)
	if err != nil {
		panic(err)
	}
	return r
}

// Base returns the URL relative names are resolved against.
func (t *TemplateRenderer) Base() string { return t.base.String() }

// BuildURL returns the URL of an external requirement name. Qualified URLs
// are returned unchanged. A name that is not a valid URL reference, such as
// "100%.js", is resolved as a path with its invalid characters escaped.
func (t *TemplateRenderer) BuildURL(name string) string {
	ref, err := url.Parse(name)
	if err != nil {
		ref = &url.URL{Path: name}
	}
	if ref.Host != "" {
		return name
	}
	return t.base.ResolveReference(ref).String()
}

// Render fills the inline template with the requirement's content, or the
// external template with its URL.
func (t *TemplateRenderer) Render(req *requirement.Requirement, rc any) (string, error) {
	if req.IsInline() {
		content, err := req.Content.Render(rc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(t.inline, content), nil
	}
	return fmt.Sprintf(t.external, t.BuildURL(req.Name)), nil
}
