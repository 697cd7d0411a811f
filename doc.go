// Package closeworld turns an open-world class taxonomy into the closure
// axioms that make it closed: for every class with several direct
// subclasses, those subclasses are declared pairwise disjoint (or the class
// is declared their disjoint union).
//
// A taxonomy is a directed graph of subsumptions, super → sub. It may share
// subclasses between several superclasses, in which case plain disjointness
// would be inconsistent. Treeify first rewrites the graph into an
// equivalent tree whose vertices are class expressions (differences such as
// Dog\Puppy), and closure axioms are derived from that tree.
//
// Packages:
//
//	expr/           class expressions and their simplifying algebra
//	core/           thread-safe directed graph of string vertex IDs
//	dfs/, bfs/      traversal, topological order, reachability, components
//	taxonomy/       subsumption graphs over expressions and Treeify
//	axiom/          SubClassOf, DisjointClasses, EquivalentClasses, DisjointUnion
//	closure/        closure axiom generation from a connected taxonomy
//	owl/            OWL 2 functional-syntax rendering
//	bundle/         YAML, JSON and OWL/XML taxonomy documents and glob bundles
//	cmd/closeworld  the command-line front end
//
// Quick start:
//
//	tx, _ := taxonomy.FromEdges([][2]string{{"Animal", "Dog"}, {"Animal", "Cat"}})
//	axioms, _ := closure.GenerateClosureAxioms(tx, axiom.TypeDisjointClasses)
//	// DisjointClasses(Cat, Dog)
package closeworld
