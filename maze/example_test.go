package maze_test

import (
	"fmt"
	"strings"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
)

// Parse a stored graph and inspect its shape.
func ExampleLoad() {
	const stored = `# tiny fixture
2 2 4
n 0 1.20000
n 1 1.40000
n 2 1.60000
n 3 1.80000
e 0 1
e 1 0
e 2 3
e 3 2
`
	g, err := maze.Load(strings.NewReader(stored))
	if err != nil {
		fmt.Println("load:", err)
		return
	}
	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount()/2)
	fmt.Println("linked:", g.HasEdge(0, 1), g.HasEdge(0, 2))
	// Output:
	// nodes: 4
	// edges: 2
	// linked: true false
}

// Elongated regions get several hubs spaced along their long axis.
func ExampleGraph_HubList() {
	tree, err := fractal.Basic(12, 3)
	if err != nil {
		fmt.Println("tree:", err)
		return
	}
	g, err := maze.Generate(tree, maze.DefaultOptions())
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	for _, hub := range g.HubList(0, 0, 12, 3) {
		fmt.Println(hub[0], hub[1])
	}
	// Output:
	// 3 1
	// 6 1
	// 9 1
}
