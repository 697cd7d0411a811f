// Package closure derives closed-world closure axioms from a taxonomy.
//
// A taxonomy states only that subclasses are contained in their
// superclasses. Under a closed-world reading, siblings are also pairwise
// disjoint (and, for DisjointUnion, jointly exhaust their parent). Generate
// makes those statements explicit:
//
//  1. EnsureConnected (ErrUnconnectedTaxonomy)
//  2. Treeify, so that every class has a single parent
//  3. EnsureTree (ErrInvalidTree, a defect if ever returned)
//  4. one axiom per sibling group of the tree
//
// The axioms are returned as a deduplicated axiom.Set. Result also carries
// the tree and the parents for which a DisjointUnion had to be weakened.
package closure
