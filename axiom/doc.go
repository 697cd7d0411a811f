// Package axiom models the statements produced by closure generation:
// SubClassOf, DisjointClasses, EquivalentClasses and DisjointUnion.
//
// Axioms are immutable and compared by Key, which is built from the canonical
// keys of their operands in sorted order, so DisjointClasses(a, b) and
// DisjointClasses(b, a) are the same axiom. Set deduplicates on that key.
//
// Type names the closure mode selected by users (disjoint-classes,
// disjoint-union, equivalent-classes).
package axiom
