package dag

import (
	"errors"
	"slices"
)

var (
	// ErrGraphHasCycle is returned by [Graph.TopologicalSort] when no node
	// order satisfies every edge. No partial order is returned alongside it.
	ErrGraphHasCycle = errors.New("graph contains a cycle")

	// ErrInvalidNodeID is returned by [Graph.Validate] for nodes with an
	// empty name.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrInDegreeMismatch is returned by [Graph.Validate] when a node's
	// recorded in-degree differs from the number of edges pointing at it.
	// This indicates graph corruption.
	ErrInDegreeMismatch = errors.New("in-degree does not match edges")
)

// Node is a vertex in the dependency graph.
//
// Dependencies lists, in recording order, the names this node depends on
// (duplicates included when a dependency was recorded twice). InDegree counts
// how many recorded dependency references point at this node.
type Node struct {
	ID           string
	InDegree     int
	Dependencies []string
}

// Edge is a directed producer -> consumer relation: From must be emitted
// before To.
type Edge struct {
	From string // The dependency
	To   string // The requirement that depends on From
}

// Graph is an insertion-ordered dependency graph.
//
// Nodes are iterated in the order they were first referenced, either as a
// dependant or as a dependency. That order seeds the topological sort and
// makes its output reproducible.
//
// The zero value is not usable - use [New]. Graph is not safe for concurrent
// use.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// ensure returns the node for id, creating it with in-degree 0 if absent.
func (g *Graph) ensure(id string) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Dependencies: []string{}}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// AddNode ensures a node exists without recording any edge.
func (g *Graph) AddNode(id string) {
	g.ensure(id)
}

// RecordEdges registers name and its dependencies. The node for name is
// created if needed; each dependency is created if needed, appended to name's
// dependency list and has its in-degree incremented.
//
// RecordEdges is called once per registration, in registration order.
// Recording the same name again accumulates edges.
func (g *Graph) RecordEdges(name string, dependsOn []string) {
	n := g.ensure(name)
	for _, d := range dependsOn {
		n.Dependencies = append(n.Dependencies, d)
		g.ensure(d).InDegree++
	}
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// IDs returns all node ids in insertion order.
func (g *Graph) IDs() []string { return slices.Clone(g.order) }

// DependsOn returns the dependencies recorded for id, deduplicated and in
// recording order.
func (g *Graph) DependsOn(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return uniq(n.Dependencies)
}

// Dependents returns the nodes that depend on id, in insertion order.
func (g *Graph) Dependents(id string) []string {
	var out []string
	for _, other := range g.order {
		if slices.Contains(g.nodes[other].Dependencies, id) {
			out = append(out, other)
		}
	}
	return out
}

// Edges returns every distinct producer -> consumer edge, grouped by consumer
// in insertion order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, id := range g.order {
		for _, d := range uniq(g.nodes[id].Dependencies) {
			edges = append(edges, Edge{From: d, To: id})
		}
	}
	return edges
}

// Sources returns nodes nothing depends on (in-degree 0), in insertion order.
// These are the final consumers of the graph.
func (g *Graph) Sources() []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.InDegree == 0 {
			out = append(out, n)
		}
	}
	return out
}

// TopologicalSort orders all nodes so that every dependency precedes the
// nodes depending on it.
//
// # Algorithm
//
// Kahn's algorithm over the consumer -> dependency edges:
//  1. Seed a ready stack with every in-degree 0 node, in insertion order
//  2. Pop the most recently pushed node (LIFO) and append it to the result
//  3. Decrement the in-degree of each of its dependencies, pushing those
//     that reach zero
//  4. Repeat until the stack is empty
//
// The pass yields consumers before producers; the result is reversed before
// it is returned. Ties are broken only by insertion order and the LIFO
// policy, so the output is deterministic.
//
// # Cycles
//
// If any node never reaches in-degree 0, TopologicalSort returns
// [ErrGraphHasCycle] and a nil slice. The graph itself is not modified.
func (g *Graph) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.order))
	ready := make([]string, 0, len(g.order))
	for _, id := range g.order {
		degree := g.nodes[id].InDegree
		inDegree[id] = degree
		if degree == 0 {
			ready = append(ready, id)
		}
	}

	ordered := make([]string, 0, len(g.order))
	for len(ready) > 0 {
		curr := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		ordered = append(ordered, curr)

		for _, dep := range g.nodes[curr].Dependencies {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(ordered) != len(g.order) {
		return nil, ErrGraphHasCycle
	}
	slices.Reverse(ordered)
	return ordered, nil
}

// Validate checks structural integrity: non-empty ids and in-degrees that
// match the recorded dependency references.
func (g *Graph) Validate() error {
	counts := make(map[string]int, len(g.order))
	for _, id := range g.order {
		if id == "" {
			return ErrInvalidNodeID
		}
		for _, d := range g.nodes[id].Dependencies {
			counts[d]++
		}
	}
	for _, id := range g.order {
		if g.nodes[id].InDegree != counts[id] {
			return ErrInDegreeMismatch
		}
	}
	return nil
}

func uniq(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
