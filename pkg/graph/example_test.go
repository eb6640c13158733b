package graph_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/tsets/pkg/graph"
)

func ExampleCycle() {
	g := graph.Cycle(4)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.Edges())
	fmt.Println("0~3:", g.HasEdge(0, 3))
	fmt.Println("0~2:", g.HasEdge(0, 2))
	// Output:
	// Vertices: [0 1 2 3]
	// Edges: [(0, 1) (0, 3) (1, 2) (2, 3)]
	// 0~3: true
	// 0~2: false
}

func ExampleWriteGraph() {
	var buf bytes.Buffer
	if err := graph.WriteGraph(graph.Path(2), &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Print(buf.String())
	// Output:
	// {
	//   "vertices": [
	//     0,
	//     1
	//   ],
	//   "edges": [
	//     {
	//       "u": 0,
	//       "v": 1
	//     }
	//   ]
	// }
}

func ExampleReadGraph() {
	jsonData := `{
		"vertices": [0, 1, 2],
		"edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}]
	}`

	g, err := graph.ReadGraph(strings.NewReader(jsonData))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Neighbors of 1:", g.Neighbors(1))
	// Output:
	// Vertices: 3
	// Edges: 2
	// Neighbors of 1: [0 2]
}

func ExampleBuild() {
	for _, kind := range graph.Kinds() {
		g, _ := graph.Build(graph.Kind(kind), 4)
		fmt.Printf("%s: %d edges\n", kind, g.EdgeCount())
	}
	// Output:
	// complete: 6 edges
	// cycle: 4 edges
	// empty: 0 edges
	// path: 3 edges
}
