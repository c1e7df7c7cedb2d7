// Package requirement defines the value types for static-asset requirements.
//
// # Overview
//
// A [Requirement] is a named declaration that a page needs some asset: either
// an external resource linked from the document (a script or stylesheet URL)
// or an inline block whose content is embedded in the document. Requirements
// may carry a group ("js", "css", ...) used to pick a renderer and to filter
// output, and a list of other requirement names that must be emitted first.
//
// # Kinds
//
//   - [KindExternal]: created by [NewExternal]. The name is a path resolved
//     against the media base URL, or an absolute URL used as-is (see
//     [Requirement.IsQualifiedURL]).
//   - [KindInline]: created by [NewInline]. The name only identifies the
//     block; the markup comes from its [Content].
//
// # Inline Content
//
// Inline content is resolved at render time, not at registration time. Literal
// strings are wrapped in [Text]; lazily produced content implements [Content]
// directly (for example a template fragment executed against the page data)
// or is adapted from a function with [ContentFunc]. The render context handed
// to [Content.Render] is opaque to this package.
//
// # Immutability
//
// Requirements are never modified after construction. Constructors copy the
// dependency list so callers cannot alias it.
package requirement
