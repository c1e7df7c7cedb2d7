package dag_test

import (
	"fmt"

	"github.com/matzehuels/requiremedia/pkg/dag"
)

func ExampleGraph_TopologicalSort() {
	// jquery-ui.js needs jquery.js and its stylesheet first
	g := dag.New()
	g.RecordEdges("jquery-ui.js", []string{"jquery.js", "jquery-ui.css"})
	g.RecordEdges("jquery-ui.css", nil)
	g.RecordEdges("jquery.js", nil)

	order, err := g.TopologicalSort()
	fmt.Println(order, err)
	// Output:
	// [jquery.js jquery-ui.css jquery-ui.js] <nil>
}

func ExampleGraph_TopologicalSort_cycle() {
	g := dag.New()
	g.RecordEdges("a.js", []string{"b.js"})
	g.RecordEdges("b.js", []string{"a.js"})

	_, err := g.TopologicalSort()
	fmt.Println(err)
	// Output:
	// graph contains a cycle
}

func ExampleGraph_Edges() {
	g := dag.New()
	g.RecordEdges("plugin.js", []string{"jquery.js"})

	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// jquery.js -> plugin.js
}
