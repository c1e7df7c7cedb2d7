// Package registry collects the static-asset requirements declared while a
// single document is produced, and orders them for rendering.
//
// A [Registry] records external and inline requirements in registration
// order, keeps a name lookup and a dependency graph ([dag.Graph]), and
// answers two questions: the complete dependency-respecting order
// ([Registry.Sorted]) and that order filtered to some groups
// ([Registry.SortedForGroups]).
//
//	reg := registry.New()
//	reg.AddExternal("jquery.ui.core.js", "js", "jquery.js")
//	reg.AddExternal("jquery.js", "js")
//	reg.Sorted() // jquery.js, jquery.ui.core.js
//
// # Degraded modes
//
// Nothing in this package returns an error. A dependency cycle makes
// [Registry.Sorted] fall back to the raw registration list, re-registered
// names included; the fallback is logged at warning level together with the
// edges that close each cycle, and is recomputed on every call. Names that
// are only referenced as dependencies never appear in the output.
//
// # Scope
//
// A Registry belongs to one request. It is not safe for concurrent use and
// is never shared between requests; [WithRegistry] and [FromContext] carry
// it through a request context.
package registry
