// Package io provides JSON import and export of a registry's dependency
// graph.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "app.js", "group": "js", "kind": "external"},
//	    {"id": "jquery.js", "group": "js", "kind": "external"},
//	    {"id": "init", "group": "js", "kind": "inline", "content": "App.start();"},
//	    {"id": "missing.js", "dangling": true}
//	  ],
//	  "edges": [
//	    {"from": "jquery.js", "to": "app.js"},
//	    {"from": "app.js", "to": "init"},
//	    {"from": "missing.js", "to": "init"}
//	  ]
//	}
//
// Nodes appear in graph order. Edges run from a dependency to the
// requirement that needs it, as in [dag.Graph.Edges].
//
// A node is dangling when it was referenced as a dependency but never
// registered; it carries no group or kind. Inline content is exported only
// when it is literal text. Content produced by a function is written as an
// empty string.
//
// # Round Trip
//
// [ReadJSON] recreates the nodes in their exported order, then registers
// every non-dangling node with the dependencies its incoming edges name.
// The rebuilt registry has the same graph order and edges as the exported
// one, and sorts the same unless a requirement listed a dependency twice.
// Re-registrations collapse into one.
//
// [dag.Graph.Edges]: github.com/matzehuels/requiremedia/pkg/dag.Graph.Edges
package io
