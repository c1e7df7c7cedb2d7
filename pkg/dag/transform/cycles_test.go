package transform

import (
	"slices"
	"testing"

	"github.com/matzehuels/requiremedia/pkg/dag"
)

func TestCycleEdges_NoCycles(t *testing.T) {
	g := dag.New()
	g.RecordEdges("a", []string{"b"})
	g.RecordEdges("b", []string{"c"})

	if got := CycleEdges(g); got != nil {
		t.Errorf("CycleEdges() = %v, want nil", got)
	}
	if HasCycle(g) {
		t.Error("HasCycle() = true, want false")
	}
}

func TestCycleEdges_SimpleCycle(t *testing.T) {
	g := dag.New()
	g.RecordEdges("a", []string{"b"})
	g.RecordEdges("b", []string{"a"})

	got := CycleEdges(g)
	want := []dag.Edge{{From: "a", To: "b"}}
	if !slices.Equal(got, want) {
		t.Errorf("CycleEdges() = %v, want %v", got, want)
	}
	if !HasCycle(g) {
		t.Error("HasCycle() = false, want true")
	}
}

func TestCycleEdges_TriangleCycle(t *testing.T) {
	g := dag.New()
	g.RecordEdges("a", []string{"b"})
	g.RecordEdges("b", []string{"c"})
	g.RecordEdges("c", []string{"a"})

	got := CycleEdges(g)
	if len(got) != 1 {
		t.Fatalf("CycleEdges() = %v, want one back edge", got)
	}
	if got[0] != (dag.Edge{From: "a", To: "c"}) {
		t.Errorf("CycleEdges()[0] = %v, want a -> c", got[0])
	}
}

func TestCycleEdges_SelfLoop(t *testing.T) {
	g := dag.New()
	g.RecordEdges("a", []string{"a"})

	got := CycleEdges(g)
	want := []dag.Edge{{From: "a", To: "a"}}
	if !slices.Equal(got, want) {
		t.Errorf("CycleEdges() = %v, want %v", got, want)
	}
}

func TestCycleEdges_DoesNotMutate(t *testing.T) {
	g := dag.New()
	g.RecordEdges("a", []string{"b"})
	g.RecordEdges("b", []string{"a"})
	before := g.Edges()

	CycleEdges(g)

	if !slices.Equal(g.Edges(), before) {
		t.Errorf("Edges() changed: %v -> %v", before, g.Edges())
	}
}
