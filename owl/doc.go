// Package owl renders class expressions and axioms in OWL 2 functional
// syntax.
//
// Mapping:
//
//	U, ∅           owl:Thing, owl:Nothing
//	atom           IRI (see Translator.IRI)
//	x′             ObjectComplementOf(x)
//	a\b            ObjectIntersectionOf(a ObjectComplementOf(b))
//	a∩b, a∪b       ObjectIntersectionOf(a b), ObjectUnionOf(a b)
//
// Axioms map to SubClassOf, DisjointClasses, EquivalentClasses and
// DisjointUnion of the same name. Operand order follows the canonical key
// order of package expr, so output is deterministic.
package owl
