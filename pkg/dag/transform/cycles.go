package transform

import "github.com/matzehuels/requiremedia/pkg/dag"

// CycleEdges returns the edges that close a cycle, in producer -> consumer
// orientation. The graph is not modified.
//
// CycleEdges walks the graph depth-first along dependency references,
// colouring nodes white (unvisited), gray (on the current path) and black
// (finished). A reference to a gray node is a back edge. Walks start from the
// sources and then from any node left unvisited, both in insertion order, so
// the result is deterministic. An acyclic graph yields nil.
func CycleEdges(g *dag.Graph) []dag.Edge {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.Len())
	var back []dag.Edge

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, dep := range g.DependsOn(id) {
			switch color[dep] {
			case white:
				dfs(dep)
			case gray:
				back = append(back, dag.Edge{From: dep, To: id})
			}
		}
		color[id] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	return back
}

// HasCycle reports whether the graph contains at least one cycle.
func HasCycle(g *dag.Graph) bool {
	return len(CycleEdges(g)) > 0
}
