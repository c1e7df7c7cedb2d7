// Package page wires requirement directives into html/template.
//
// Templates are parsed with [Funcs], which declares four functions:
//
//	{{ require "js" "jquery-ui.js" "jquery.js" }}
//	{{ "#sidebar { float: left; }" | requireInline "sidebar" "css" }}
//	{{ requireBlock "init" "js" "init-script" "jquery.js" }}
//	{{ renderRequirements "css" "js" }}
//
// require and requireInline take the arguments of the require and
// require_inline directives; requireInline receives its content as the last
// argument, usually through a pipeline. requireBlock registers inline
// content produced by executing the named template with the page data when
// the requirements are rendered.
//
// renderRequirements may appear before the calls that register requirements,
// typically in the document head. It writes a placeholder that [Session.Finalize]
// replaces with the rendered requirements once the whole template has run, so
// its output covers everything the page registered.
//
// Inline content is inserted without escaping.
//
// [Pages] bundles this for a parsed template set: each [Pages.Execute] call
// clones the set, binds a fresh [Session] to the given registry, executes
// the page and finalizes the output. A nil registry turns every directive
// into a no-op and every placeholder into the empty string.
package page
