// Package dag provides the insertion-ordered dependency graph behind a
// requirement registry, and its deterministic topological sort.
//
// # Overview
//
// Every requirement name is a node. A node is created the first time it is
// referenced, whether as a registered requirement or as one of its
// dependencies, so the graph tolerates names that are never registered. The
// graph remembers that first-reference order and uses it wherever it
// iterates, which makes sorting reproducible across runs.
//
// # Basic Usage
//
// Record each registration with [Graph.RecordEdges] and sort with
// [Graph.TopologicalSort]:
//
//	g := dag.New()
//	g.RecordEdges("jquery-ui.js", []string{"jquery.js"})
//	g.RecordEdges("jquery.js", nil)
//	order, err := g.TopologicalSort() // [jquery.js jquery-ui.js]
//
// # Edge Layout
//
// Each [Node] stores the names it depends on and an in-degree counting the
// dependency references pointing at it. [Graph.Edges] presents the same
// information as producer -> consumer pairs, the orientation used when the
// graph is drawn.
//
// # Sorting
//
// [Graph.TopologicalSort] runs Kahn's algorithm with a LIFO ready stack seeded
// in insertion order. A cycle yields [ErrGraphHasCycle]; callers decide how to
// degrade. The [transform] subpackage reports which edges close cycles.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A graph belongs to one
// registry, and a registry to one request.
//
// [transform]: github.com/matzehuels/requiremedia/pkg/dag/transform
package dag
