// Package render turns registered requirements into markup fragments.
//
// # Renderers
//
// A [Renderer] produces the fragment for one requirement. [TemplateRenderer]
// is the stock implementation: it fills an external template with the
// requirement's URL, or an inline template with its rendered content.
//
//	js, _ := render.NewTemplateRenderer("/media/", "js/",
//	    `<script src="%s"></script>`, `<script>%s</script>`)
//	js.BuildURL("jquery.js")                     // /media/js/jquery.js
//	js.BuildURL("http://example.com/jquery.js")  // unchanged
//
// Relative names are resolved against base URL plus directory with RFC 3986
// reference resolution, so "../lib/x.js" and "/static/x.js" behave as they
// would in a browser. Qualified names (with a host) are used as given.
//
// # Tables
//
// A [Table] maps group names to renderers and records the recognized groups
// in their default output order. Tables are built once at startup from a
// [config.Config] and are safe to share between requests.
//
// # Rendering a registry
//
// [Requirements] renders the requirements of some groups, one group after
// the other, each in dependency order. [Deferred] captures the same arguments and renders only when
// [Deferred.Render] is called, so requirements registered after the
// render point are still included.
//
// Inline content is inserted verbatim; escaping is the job of whoever
// supplies it.
//
// # Subpackages
//
// The [nodelink] subpackage draws a registry's dependency graph with
// Graphviz.
//
// [nodelink]: github.com/matzehuels/requiremedia/pkg/render/nodelink
package render
