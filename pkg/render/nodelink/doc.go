// Package nodelink draws a registry's dependency graph as a node-link
// diagram.
//
// # Usage
//
// Convert a registry to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(reg, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// Edges point from a dependency to the requirement that needs it, so the
// diagram reads top to bottom in output order.
//
// # Node styles
//
//   - External requirements: rounded white boxes
//   - Inline requirements: rounded boxes with a light yellow fill
//   - Names only referenced as dependencies: dashed grey boxes
//
// With Detailed set, labels also show the group and kind.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
