// Package expr implements the class-expression algebra: immutable,
// canonical set-theoretic expressions over named classes.
//
// An Expression is one of seven variants:
//
//	Universal        U        every individual (owl:Thing)
//	Empty            ∅        no individual (owl:Nothing)
//	Atom             a        a named class
//	ComplementOf     a′       set complement
//	DifferenceOf     a\b      a minus b
//	IntersectionOf   a∩b∩…    two or more distinct operands
//	UnionOf          a∪b∪…    two or more distinct operands
//
// Values are built only with U, None, NewAtom and the operators Complement,
// Difference, Intersection and Union. The operators simplify as they build:
//
//	U′ = ∅            ∅′ = U            (x′)′ = x
//	a\∅ = a           a\U = ∅           a\a = ∅         ∅\a = ∅
//	(x\y)\b = x\(y∪b)
//	a∩a = a           U∩b = b           ∅∩b = ∅
//	a∪a = a           U∪b = U           ∅∪b = b
//	nested intersections and unions are flattened, operand sets deduplicated
//
// so two expressions reached through different operator sequences but denoting
// the same canonical value have the same Key. Equal compares keys; String is
// for display only and is not guaranteed to parse back.
//
// Nil operands and blank atom identifiers are programmer errors and panic with
// ErrNilOperand and ErrEmptyAtomID.
package expr
