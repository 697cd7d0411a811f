package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/closeworld/core"
	"github.com/katalvlaran/closeworld/dfs"
)

// pets is a small class hierarchy where Puppy has two superclasses:
//
//	   Animal
//	   /    \
//	 Dog    Pet
//	   \    /
//	   Puppy
//	     |
//	   Beagle
func pets() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"Animal", "Dog"}, {"Animal", "Pet"},
		{"Dog", "Puppy"}, {"Pet", "Puppy"},
		{"Puppy", "Beagle"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}

// ExampleDFS prints the post-order of a walk from the root class.
// Successors are expanded in lexicographic order, so Dog is entered before Pet.
func ExampleDFS() {
	res, err := dfs.DFS(pets(), "Animal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))

	// Output:
	// Beagle Puppy Dog Pet Animal
}

// ExampleTopologicalSort orders every class after all of its superclasses.
func ExampleTopologicalSort() {
	order, err := dfs.TopologicalSort(pets())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// Animal Pet Dog Puppy Beagle
}

// ExampleReachable lists the ancestors and the descendants of a class.
func ExampleReachable() {
	g := pets()

	up, _ := dfs.Reachable(g, "Puppy", dfs.WithReverse())
	down, _ := dfs.Reachable(g, "Dog")
	fmt.Println(strings.Join(up, " "))
	fmt.Println(strings.Join(down, " "))

	// Output:
	// Animal Dog Pet
	// Beagle Puppy
}

// ExampleStronglyConnected collapses a subsumption cycle B→C→D→B.
// Classes on such a cycle are equivalent, so they form one component.
func ExampleStronglyConnected() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "B")
	_ = g.AddEdge("D", "E")

	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range comps {
		fmt.Println(strings.Join(c, " "))
	}

	// Output:
	// A
	// B C D
	// E
}
