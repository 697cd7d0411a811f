package closure_test

import (
	"fmt"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/closure"
	"github.com/katalvlaran/closeworld/taxonomy"
)

func ExampleGenerate() {
	tx, _ := taxonomy.FromEdges([][2]string{
		{"Animal", "Dog"},
		{"Animal", "Cat"},
		{"Dog", "Puppy"},
		{"Dog", "Hound"},
	})

	res, err := closure.Generate(tx, closure.WithType(axiom.TypeDisjointUnion))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range res.Axioms.Axioms() {
		fmt.Println(a)
	}
	// Output:
	// DisjointUnion(Animal, Cat, Dog)
	// DisjointUnion(Dog, Hound, Puppy)
}
