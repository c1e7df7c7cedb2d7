// Package transform provides read-only analyses over dependency graphs.
//
// [CycleEdges] lists the edges that close cycles. The registry calls it only
// after [dag.Graph.TopologicalSort] has reported [dag.ErrGraphHasCycle], to
// log which requirements caused the fallback to registration order:
//
//	if _, err := g.TopologicalSort(); errors.Is(err, dag.ErrGraphHasCycle) {
//	    for _, e := range transform.CycleEdges(g) {
//	        logger.Warn("dependency cycle", "from", e.From, "to", e.To)
//	    }
//	}
//
// Nothing in this package mutates the graph: a registry must stay consistent
// after a detected cycle so later registrations can still be sorted.
//
// [dag.Graph.TopologicalSort]: github.com/matzehuels/requiremedia/pkg/dag#Graph.TopologicalSort
// [dag.ErrGraphHasCycle]: github.com/matzehuels/requiremedia/pkg/dag#ErrGraphHasCycle
package transform
