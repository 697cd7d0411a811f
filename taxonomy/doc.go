// Package taxonomy implements the taxonomy graph engine: an immutable DAG of
// class expressions with subsumption edges (superclass → subclass), graph
// queries, and the rewriting steps that turn a multi-parent DAG into an
// equivalent tree.
//
// Storage is a core.Graph keyed by canonical expression keys plus a
// key→expression arena. Transformations never touch the receiver: they copy
// the adjacency (O(V+E)) and share expression values.
//
// Queries:
//
//	ChildrenOf, ParentsOf              one edge away
//	DescendantsOf, AncestorsOf         transitive closure
//	DirectChildrenOf, DirectParentsOf  nearest relatives only
//	MultiParentChild                   first vertex (topological order) with >1 direct parent
//	Roots, Vertices, Edges, Len, Equal
//
// Transformations:
//
//	ExciseVertex(v)            drop v, connect its parents to its children
//	TransitiveReduction()      drop edges implied by longer paths
//	RootAt(r)                  add r above every root
//	BypassParents(c, P)        lift c past each p ∈ P to p's direct parents
//	ReduceChild(c)             keep only edges from c's direct parents
//	IsolateChild(c, P)         replace each non-root p ∈ P by p\c
//	Treeify()                  repeat bypass → reduce → isolate to a fixed point
//
// Worked example (edges a→b, a→c, b→d, b→e, c→f, c→g, c→i, e→h, e→i, f→k,
// i→j, j→k): i is shared by c and e, k by f and j. Treeify yields
//
//	a → b, c\(i∪k)
//	b → d, e\i, i\k, k
//	c\(i∪k) → f\k, g
//	e\i → h
//	i\k → j\k
//
// Validation: EnsureConnected (ErrUnconnectedTaxonomy) and EnsureTree
// (ErrInvalidTree) operate on the underlying undirected graph.
package taxonomy
