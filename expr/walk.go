package expr

import "sort"

// IsAtom reports whether e is a named class.
func IsAtom(e Expression) bool {
	_, ok := e.(Atom)
	return ok
}

// Operands returns the direct sub-expressions of e: the operand of a
// complement, minuend and subtrahend of a difference, the operand set of an
// intersection or union, and nil for Universal, Empty and atoms.
func Operands(e Expression) []Expression {
	switch v := e.(type) {
	case ComplementOf:
		return []Expression{v.operand}
	case DifferenceOf:
		return []Expression{v.minuend, v.subtrahend}
	case IntersectionOf:
		return v.Operands()
	case UnionOf:
		return v.Operands()
	default:
		return nil
	}
}

// Sort orders es in place by canonical key.
func Sort(es []Expression) {
	sort.Slice(es, func(i, j int) bool { return es[i].Key() < es[j].Key() })
}

// Distinct returns the structurally distinct members of es sorted by key.
// Nil members panic with ErrNilOperand.
func Distinct(es ...Expression) []Expression {
	mustOperand(es...)
	seen := make(map[string]struct{}, len(es))
	out := make([]Expression, 0, len(es))
	for _, e := range es {
		k := e.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	Sort(out)

	return out
}

// Walk visits e and its sub-expressions depth-first in pre-order.
// If fn returns false the sub-expressions of that node are skipped.
func Walk(e Expression, fn func(Expression) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, op := range Operands(e) {
		Walk(op, fn)
	}
}

// Atoms returns the distinct atoms occurring in e, sorted by key.
func Atoms(e Expression) []Expression {
	var found []Expression
	Walk(e, func(x Expression) bool {
		if IsAtom(x) {
			found = append(found, x)
		}
		return true
	})

	return Distinct(found...)
}
