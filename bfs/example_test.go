package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/closeworld/bfs"
	"github.com/katalvlaran/closeworld/core"
)

// ExampleBFS explores a small hierarchy from a leaf. The default search ignores
// edge direction, so the whole component is reached.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge("Animal", "Dog")
	_ = g.AddEdge("Animal", "Cat")
	_ = g.AddEdge("Dog", "Puppy")

	res, _ := bfs.BFS(g, "Puppy")
	fmt.Println(res.Order)
	fmt.Println(res.Depth["Cat"])
	// Output:
	// [Puppy Dog Animal Cat]
	// 3
}

// ExampleIsTree contrasts a tree with a diamond.
func ExampleIsTree() {
	tree := core.NewGraph()
	_ = tree.AddEdge("A", "B")
	_ = tree.AddEdge("A", "C")

	diamond := tree.Clone()
	_ = diamond.AddEdge("B", "D")
	_ = diamond.AddEdge("C", "D")

	t1, _ := bfs.IsTree(tree)
	t2, _ := bfs.IsTree(diamond)
	fmt.Println(t1, t2)
	// Output:
	// true false
}
