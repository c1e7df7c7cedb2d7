// Package pkg provides the libraries behind requiremedia.
//
// # Overview
//
// requiremedia collects the scripts and stylesheets a document needs while
// the document is being produced, then emits them as HTML tags with every
// dependency before the requirements that need it. Requirements are declared
// where they are used (a template partial asks for "jquery-ui.js"), and the
// page decides where the tags go.
//
// # Architecture
//
// The data flow for one request:
//
//	require / require_inline directives
//	         ↓
//	    [registry] (ordered requirements + [dag] graph)
//	         ↓
//	    [registry.Registry.SortedForGroups] (topological order, filtered)
//	         ↓
//	    [render] (one Renderer per group)
//	         ↓
//	    <script>, <link>, <style> tags
//
// # Quick Start
//
//	reg := registry.New()
//	reg.AddExternal("jquery-ui.js", "js", "jquery.js")
//	reg.AddExternal("jquery.js", "js")
//
//	html, _ := render.Requirements(reg, render.DefaultTable(), nil, "js")
//	// <script src="/media/js/jquery.js"></script><script src="/media/js/jquery-ui.js"></script>
//
// # Main Packages
//
// ## Core
//
// [requirement] - The requirement model: external references and inline
// content blocks, with an optional group and dependencies.
//
// [dag] - Insertion-ordered dependency graph with a deterministic
// topological sort. [dag/transform] finds the edges that close cycles.
//
// [registry] - The per-request requirement collection. Sorting falls back to
// registration order on a cycle instead of failing.
//
// [render] - Renderers per group, the renderer table, and the deferred
// render point that is finalized after the document registered everything.
//
// ## Integration
//
// [directive] - The require, require_inline and render_requirements
// grammar, with alias substitution and group inference from [alias].
//
// [page] - html/template integration: directive functions and placeholders
// that are filled in after the template ran.
//
// [middleware] - net/http middleware that gives every request its own
// registry.
//
// [manifest] - Requirement lists in TOML or YAML.
//
// [io] - JSON import and export of a registry graph.
//
// [render/nodelink] - Graphviz DOT and SVG diagrams of a registry graph.
//
// ## Infrastructure
//
// [config] - Configuration loading (file, defaults, environment).
//
// [cache] - File and in-memory caches for rendered graphs.
//
// [errors] - Code-based structured errors and input validation.
//
// [observability] - Hooks for registry, render, cache and HTTP events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/registry/...           # Specific package
//
// [requirement]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/requirement
// [dag]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/dag/transform
// [registry]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/registry
// [registry.Registry.SortedForGroups]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/registry#Registry.SortedForGroups
// [render]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/render/nodelink
// [directive]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/directive
// [alias]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/alias
// [page]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/page
// [middleware]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/middleware
// [manifest]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/manifest
// [io]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/requiremedia/pkg/buildinfo
package pkg
